package invaders

// Current returns the active state, or nil if the stack is empty.
func (g *Game) Current() State {
	if len(g.stack) == 0 {
		return nil
	}
	return g.stack[len(g.stack)-1]
}

// Depth returns the number of states on the stack.
func (g *Game) Depth() int {
	return len(g.stack)
}

// below returns the state beneath the top, or nil.
func (g *Game) below() State {
	if len(g.stack) < 2 {
		return nil
	}
	return g.stack[len(g.stack)-2]
}

// MoveToState replaces the top of the stack with next.
func (g *Game) MoveToState(next State) error {
	if err := g.checkTransition(next); err != nil {
		return err
	}
	g.replaceTop(next)
	return nil
}

// PushState places next over the current state without leaving it.
func (g *Game) PushState(next State) error {
	if err := g.checkTransition(next); err != nil {
		return err
	}
	g.push(next)
	return nil
}

// PopState leaves and removes the top state. No-op on an empty stack.
func (g *Game) PopState() {
	top := g.Current()
	if top == nil {
		return
	}
	top.Leave(g)
	g.stack = g.stack[:len(g.stack)-1]
	g.logger.Debug("state popped", "state", top.Kind(), "depth", len(g.stack))
}

func (g *Game) checkTransition(next State) error {
	if next == nil {
		return ErrNilState
	}
	if !g.initialised {
		return ErrNotInitialised
	}
	return nil
}

// replaceTop leaves and removes the top state before entering next.
func (g *Game) replaceTop(next State) {
	if top := g.Current(); top != nil {
		top.Leave(g)
		g.stack = g.stack[:len(g.stack)-1]
	}
	g.push(next)
}

// push enters next and places it on the stack.
func (g *Game) push(next State) {
	next.Enter(g)
	g.stack = append(g.stack, next)
	g.logger.Debug("state entered", "state", next.Kind(), "depth", len(g.stack))
}

// resetTo leaves every state from the top down, then enters next on an empty stack.
func (g *Game) resetTo(next State) {
	for len(g.stack) > 0 {
		top := g.stack[len(g.stack)-1]
		top.Leave(g)
		g.stack = g.stack[:len(g.stack)-1]
	}
	g.push(next)
}
