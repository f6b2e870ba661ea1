package stackview

// BeginGesture starts a drag on the focused card if the pointer went down
// within the response distance of the card's entering edge. It reports
// whether the drag was accepted; while no drag is accepted, UpdateGesture and
// EndGesture do nothing.
func (c *Coordinator) BeginGesture(x, y float64) bool {
	if c.gestureKey != "" || c.layout.IsZero() {
		return false
	}
	route, ok := c.Focused()
	if !ok {
		return false
	}
	card, ok := c.cards[route.Key]
	if !ok {
		return false
	}

	opts := c.options(route.Key)
	if !c.withinResponseDistance(x, y, opts) {
		return false
	}
	if !card.beginGesture(c.gestureDistance(), gestureSign(opts.GestureDirection)) {
		return false
	}

	c.gestureKey = route.Key
	c.logger.Debug("gesture began", "key", route.Key, "x", x, "y", y)
	return true
}

// UpdateGesture moves the active drag to the total translation (dx, dy)
// since BeginGesture.
func (c *Coordinator) UpdateGesture(dx, dy float64) {
	card, ok := c.cards[c.gestureKey]
	if !ok {
		return
	}
	card.updateGesture(c.alongAxis(dx, dy))
}

// EndGesture releases the active drag with a velocity in pixels per second.
// It reports whether the card was dismissed.
func (c *Coordinator) EndGesture(vx, vy float64) bool {
	key := c.gestureKey
	c.gestureKey = ""

	card, ok := c.cards[key]
	if !ok {
		return false
	}
	return card.endGesture(c.alongAxis(vx, vy), c.velocityThreshold)
}

// CancelGesture abandons the active drag and settles the card open.
func (c *Coordinator) CancelGesture() {
	key := c.gestureKey
	c.gestureKey = ""

	if card, ok := c.cards[key]; ok {
		card.cancelGesture()
	}
}

// Dragging reports whether a drag is in progress.
func (c *Coordinator) Dragging() bool {
	return c.gestureKey != ""
}

func (c *Coordinator) withinResponseDistance(x, y float64, opts Options) bool {
	d := opts.responseDistance(c.preset.Direction)
	inverted := opts.GestureDirection == GestureInverted

	if c.preset.Direction == DirectionVertical {
		if inverted {
			return y >= c.layout.Height-d
		}
		return y <= d
	}
	if inverted {
		return x >= c.layout.Width-d
	}
	return x <= d
}

func (c *Coordinator) gestureDistance() float64 {
	if c.preset.Direction == DirectionVertical {
		return c.layout.Height
	}
	return c.layout.Width
}

func (c *Coordinator) alongAxis(x, y float64) float64 {
	if c.preset.Direction == DirectionVertical {
		return y
	}
	return x
}

func gestureSign(direction GestureDirection) float64 {
	if direction == GestureInverted {
		return -1
	}
	return 1
}
