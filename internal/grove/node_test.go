package grove

import "testing"

func TestCanInteract(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *Grove, n *Node)
		want   bool
	}{
		{"fresh node", func(*Grove, *Node) {}, true},
		{"already revealed", func(_ *Grove, n *Node) { n.revealed = true }, false},
		{"game over", func(g *Grove, _ *Node) { g.Session().gameOver = true }, false},
		{"paused", func(g *Grove, _ *Node) { g.Session().TogglePause() }, false},
		{"traversal in flight", func(g *Grove, _ *Node) { g.Session().beginInteraction() }, false},
		{"time frozen", func(g *Grove, _ *Node) { g.Session().clock.Freeze() }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGrove(t, testConfig(), nil)
			n, _ := g.Level().Node(0)
			tc.mutate(g, n)
			if got := n.CanInteract(); got != tc.want {
				t.Errorf("CanInteract() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRevealStartsTraversal(t *testing.T) {
	g, _ := newTestGrove(t, testConfig(), boardDraws(true, true, true, true, true))
	n, _ := g.Level().Node(2)

	if !g.Reveal(2) {
		t.Fatal("Reveal(2) = false on a fresh board")
	}
	if !n.Revealed() || !n.ContentVisible() {
		t.Error("node not marked revealed and visible")
	}
	if !g.Session().IsInteracting() {
		t.Error("interaction lock not engaged")
	}
	if g.Actor().Phase() != PhaseOutbound {
		t.Errorf("phase = %v, want outbound", g.Actor().Phase())
	}
	if g.Actor().Target() != n {
		t.Error("actor target is not the revealed node")
	}
}

func TestInteractionLockBlocksAllNodes(t *testing.T) {
	g, _ := newTestGrove(t, testConfig(), boardDraws(true, true, true, true, true))

	if !g.Reveal(0) {
		t.Fatal("Reveal(0) = false on a fresh board")
	}
	for step := 0; step < 20; step++ {
		g.Update(testDT)
		for id := 1; id < 5; id++ {
			n, _ := g.Level().Node(id)
			if n.CanInteract() {
				t.Fatalf("step %d: node %d interactable during traversal", step, id)
			}
		}
	}
	if g.Reveal(1) {
		t.Fatal("Reveal(1) accepted during traversal")
	}

	runUntilIdle(t, g)

	if g.Session().IsInteracting() {
		t.Fatal("lock still held after traversal")
	}
	for id := 1; id < 5; id++ {
		n, _ := g.Level().Node(id)
		if !n.CanInteract() {
			t.Errorf("node %d not interactable after traversal", id)
		}
	}
	if g.Reveal(0) {
		t.Error("revealed node accepted a second reveal")
	}
}

func TestRejectedJumpReleasesLock(t *testing.T) {
	g, _ := newTestGrove(t, testConfig(), nil)
	n, _ := g.Level().Node(0)

	// Bypass CanInteract so the actor refuses the jump.
	g.Session().paused = true
	n.Reveal()

	if g.Session().IsInteracting() {
		t.Error("lock held after the actor refused the jump")
	}
	if g.Actor().Traversing() {
		t.Error("actor traversing after refusing the jump")
	}
}

func TestResetNode(t *testing.T) {
	g, _ := newTestGrove(t, testConfig(), nil)
	n, _ := g.Level().Node(0)
	n.revealed = true
	n.contentVisible = true

	n.ResetNode()

	if n.Revealed() || n.ContentVisible() {
		t.Error("ResetNode left the node revealed")
	}
}

func TestKind(t *testing.T) {
	g, _ := newTestGrove(t, testConfig(), boardDraws(true, false, true, true, true))

	tests := []struct {
		id   int
		want Kind
	}{
		{0, KindReward},
		{1, KindHazard},
	}
	for _, tc := range tests {
		n, _ := g.Level().Node(tc.id)
		if n.Kind() != tc.want {
			t.Errorf("node %d kind = %v, want %v", tc.id, n.Kind(), tc.want)
		}
	}
}
