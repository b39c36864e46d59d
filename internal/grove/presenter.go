package grove

// Presenter receives session notifications. The host implements it to
// redraw the score and show or hide its overlay views.
type Presenter interface {
	ScoreChanged(score int)
	ShowGameOverView()
	ShowPauseView()
	HidePauseView()
	ShowMainMenu()
}

// BoardHost is asked to create and destroy the visual representation of
// nodes whenever a level is set up or torn down.
type BoardHost interface {
	NodeSpawned(n *Node)
	NodesDestroyed(nodes []*Node)
}

// NopBoardHost ignores board changes. Hosts that redraw from Snapshot every
// frame have nothing to instantiate.
type NopBoardHost struct{}

func (NopBoardHost) NodeSpawned(*Node)      {}
func (NopBoardHost) NodesDestroyed([]*Node) {}
