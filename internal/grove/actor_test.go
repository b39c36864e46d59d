package grove

import (
	"math"
	"testing"

	"github.com/vovakirdan/banana-grove/internal/core"
)

func TestTraversalPhases(t *testing.T) {
	g, p := newTestGrove(t, testConfig(), boardDraws(true, true, true, true, true))
	n, _ := g.Level().Node(0)
	landing := n.Position().Add(core.V(0, TargetOffsetY))

	g.Reveal(0)
	runUntilPhase(t, g, PhaseDwell)

	if g.Actor().Position() != landing {
		t.Fatalf("dwelling at %+v, want %+v", g.Actor().Position(), landing)
	}

	// Dwell lasts exactly DwellDuration and cannot be skipped.
	steps := int(DwellDuration / testDT)
	for i := 0; i < steps-1; i++ {
		g.Update(testDT)
		if g.Actor().Phase() != PhaseDwell {
			t.Fatalf("left dwell after %d steps", i+1)
		}
		if g.Session().Score() != 0 {
			t.Fatalf("scored before dwell finished")
		}
	}
	g.Update(testDT)

	if g.Actor().Phase() != PhaseReturn {
		t.Fatalf("phase = %v after dwell, want return", g.Actor().Phase())
	}
	if g.Session().Score() != RewardPoints {
		t.Errorf("score = %d, want %d", g.Session().Score(), RewardPoints)
	}
	if len(p.scores) == 0 || p.scores[len(p.scores)-1] != RewardPoints {
		t.Errorf("presenter scores = %v", p.scores)
	}

	runUntilIdle(t, g)

	if g.Actor().Position() != g.Actor().Home() {
		t.Errorf("actor at %+v after return, want home %+v", g.Actor().Position(), g.Actor().Home())
	}
	if g.Session().IsInteracting() {
		t.Error("lock held after return")
	}
	if g.Actor().Target() != nil {
		t.Error("target kept after return")
	}
}

func TestArcFollowsParabola(t *testing.T) {
	cfg := testConfig()
	g, _ := newTestGrove(t, cfg, boardDraws(true, true, true, true, true))
	n, _ := g.Level().Node(0)
	from := g.Actor().Home()
	to := n.Position().Add(core.V(0, TargetOffsetY))

	g.Reveal(0)
	peak := 0.0
	for g.Actor().Phase() == PhaseOutbound {
		g.Update(testDT)
		if g.Actor().Phase() != PhaseOutbound {
			break
		}
		tt := g.Actor().Progress()
		want := core.Lerp(from, to, tt)
		want.Y += math.Sin(tt*math.Pi) * cfg.Actor.JumpHeight

		got := g.Actor().Position()
		if !approxEqual(got.X, want.X) || !approxEqual(got.Y, want.Y) {
			t.Fatalf("t=%.3f: position %+v, want %+v", tt, got, want)
		}
		if h := got.Y - core.Lerp(from, to, tt).Y; h > peak {
			peak = h
		}
	}
	if peak < cfg.Actor.JumpHeight*0.9 {
		t.Errorf("arc peak %.3f, want close to %.3f", peak, cfg.Actor.JumpHeight)
	}
}

func TestHazardEndsGameAtTarget(t *testing.T) {
	g, p := newTestGrove(t, testConfig(), boardDraws(false, true, true, true, true))
	n, _ := g.Level().Node(0)
	landing := n.Position().Add(core.V(0, TargetOffsetY))

	g.Reveal(0)
	runUntilIdle(t, g)

	if !g.Session().IsGameOver() {
		t.Fatal("hazard did not end the game")
	}
	if p.gameOver != 1 {
		t.Errorf("ShowGameOverView called %d times, want 1", p.gameOver)
	}
	if g.Session().TimeRunning() {
		t.Error("time still running after game over")
	}
	if g.Actor().Position() != landing {
		t.Errorf("actor at %+v, want to stay at %+v", g.Actor().Position(), landing)
	}
	if g.Session().IsInteracting() {
		t.Error("lock held after game over")
	}
	if g.Session().Score() != 0 {
		t.Errorf("score = %d, want 0", g.Session().Score())
	}

	for i := 0; i < 10; i++ {
		g.Update(testDT)
	}
	if g.Actor().Position() != landing {
		t.Error("actor moved after game over")
	}
	if g.Reveal(1) {
		t.Error("reveal accepted after game over")
	}
}

func TestPauseFreezesTraversal(t *testing.T) {
	g, _ := newTestGrove(t, testConfig(), boardDraws(true, true, true, true, true))
	g.Reveal(0)
	for i := 0; i < 10; i++ {
		g.Update(testDT)
	}
	pos := g.Actor().Position()
	progress := g.Actor().Progress()

	g.Session().TogglePause()
	for i := 0; i < 100; i++ {
		g.Update(testDT)
	}
	if g.Actor().Position() != pos || g.Actor().Progress() != progress {
		t.Fatalf("actor moved while paused: %+v (%.3f) -> %+v (%.3f)",
			pos, progress, g.Actor().Position(), g.Actor().Progress())
	}
	if !g.Session().IsInteracting() {
		t.Error("pause released the lock")
	}

	g.Session().TogglePause()
	g.Update(testDT)
	if g.Actor().Progress() <= progress {
		t.Errorf("progress %.3f did not advance past %.3f after resume", g.Actor().Progress(), progress)
	}
}

func TestResumeFrameCountsInFull(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, g *Grove)
		value func(a *Actor) float64
		step  func(g *Grove) float64
	}{
		{
			name: "leg",
			setup: func(t *testing.T, g *Grove) {
				for i := 0; i < 10; i++ {
					g.Update(testDT)
				}
			},
			value: func(a *Actor) float64 { return a.covered },
			step:  func(g *Grove) float64 { return testDT * g.Actor().cfg.JumpSpeed },
		},
		{
			name: "dwell",
			setup: func(t *testing.T, g *Grove) {
				runUntilPhase(t, g, PhaseDwell)
				for i := 0; i < 4; i++ {
					g.Update(testDT)
				}
			},
			value: func(a *Actor) float64 { return a.dwellElapsed },
			step:  func(g *Grove) float64 { return testDT },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGrove(t, testConfig(), boardDraws(true, true, true, true, true))
			g.Reveal(0)
			tc.setup(t, g)
			phase := g.Actor().Phase()
			before := tc.value(g.Actor())

			g.Session().TogglePause()
			for i := 0; i < 5; i++ {
				g.Update(testDT)
			}
			g.Session().TogglePause()
			g.Update(testDT)

			if g.Actor().Phase() != phase {
				t.Fatalf("phase = %v, want %v", g.Actor().Phase(), phase)
			}
			want := before + tc.step(g)
			if got := tc.value(g.Actor()); !approxEqual(got, want) {
				t.Errorf("after resume frame = %g, want %g", got, want)
			}
		})
	}
}

func TestPauseToggleTwiceIsIdempotent(t *testing.T) {
	tests := []struct {
		name          string
		updateInPause bool
	}{
		{"immediate toggle", false},
		{"update while paused", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGrove(t, testConfig(), boardDraws(true, true, true, true, true))
			g.Reveal(0)
			for i := 0; i < 10; i++ {
				g.Update(testDT)
			}
			pos := g.Actor().Position()
			progress := g.Actor().Progress()

			g.Session().TogglePause()
			if tc.updateInPause {
				g.Update(testDT)
			}
			g.Session().TogglePause()
			g.Update(0)

			got := g.Actor().Position()
			if !approxEqual(got.X, pos.X) || !approxEqual(got.Y, pos.Y) {
				t.Errorf("position %+v, want %+v", got, pos)
			}
			if !approxEqual(g.Actor().Progress(), progress) {
				t.Errorf("progress %.6f, want %.6f", g.Actor().Progress(), progress)
			}
		})
	}
}

func TestPauseRecomputesLegStart(t *testing.T) {
	g, _ := newTestGrove(t, testConfig(), boardDraws(true, true, true, true, true))
	clock := &manualClock{}
	g.Actor().clock = clock
	speed := g.Actor().cfg.JumpSpeed

	g.Reveal(0)
	clock.now = 0.25
	g.Update(testDT)
	if want := 0.25 * speed; g.Actor().covered != want {
		t.Fatalf("covered = %g, want %g", g.Actor().covered, want)
	}
	before := g.Actor().Position()

	// The time source keeps running while the session is paused.
	g.Session().TogglePause()
	clock.now = 10
	g.Update(testDT)
	g.Session().TogglePause()
	g.Update(testDT)

	if want := 0.25 * speed; g.Actor().covered != want {
		t.Errorf("covered after resume = %g, want %g", g.Actor().covered, want)
	}
	if g.Actor().Position() != before {
		t.Errorf("position after resume = %+v, want %+v", g.Actor().Position(), before)
	}

	clock.now = 10.25
	g.Update(testDT)
	if want := 0.5 * speed; g.Actor().covered != want {
		t.Errorf("covered = %g, want %g", g.Actor().covered, want)
	}
}

func TestPauseRecomputesDwellStart(t *testing.T) {
	g, _ := newTestGrove(t, testConfig(), boardDraws(true, true, true, true, true))
	clock := &manualClock{}
	g.Actor().clock = clock

	g.Reveal(0)
	clock.now = 100
	g.Update(testDT)
	if g.Actor().Phase() != PhaseDwell {
		t.Fatalf("phase = %v, want dwell", g.Actor().Phase())
	}

	clock.now = 100.25
	g.Update(testDT)

	g.Session().TogglePause()
	clock.now = 200
	g.Update(testDT)
	g.Session().TogglePause()
	g.Update(testDT)

	if g.Actor().Phase() != PhaseDwell {
		t.Fatalf("phase = %v after resume, want dwell", g.Actor().Phase())
	}
	if g.Actor().dwellElapsed != 0.25 {
		t.Errorf("dwell elapsed = %g, want 0.25", g.Actor().dwellElapsed)
	}

	clock.now = 200.25
	g.Update(testDT)
	if g.Actor().Phase() != PhaseReturn {
		t.Errorf("phase = %v, want return", g.Actor().Phase())
	}
	if g.Session().Score() != RewardPoints {
		t.Errorf("score = %d, want %d", g.Session().Score(), RewardPoints)
	}
}

func TestJumpIgnored(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *Grove)
	}{
		{"already traversing", func(g *Grove) { g.Actor().traversing = true }},
		{"paused", func(g *Grove) { g.Session().paused = true }},
		{"game over", func(g *Grove) { g.Session().gameOver = true }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGrove(t, testConfig(), nil)
			n, _ := g.Level().Node(0)
			tc.mutate(g)

			if g.Actor().JumpAndResolve(n) {
				t.Fatal("JumpAndResolve accepted")
			}
			if g.Actor().Phase() != PhaseIdle || g.Actor().Target() != nil {
				t.Errorf("state changed: phase %v target %v", g.Actor().Phase(), g.Actor().Target())
			}
		})
	}
}

func TestRestartMidFlightReleasesLock(t *testing.T) {
	g, _ := newTestGrove(t, testConfig(), boardDraws(true, true, true, true, true))
	g.Reveal(0)
	for i := 0; i < 10; i++ {
		g.Update(testDT)
	}

	g.Session().RestartGame()

	if g.Session().IsInteracting() {
		t.Error("lock held after restart")
	}
	if g.Actor().Traversing() || g.Actor().Phase() != PhaseIdle {
		t.Errorf("actor still traversing: phase %v", g.Actor().Phase())
	}
	if g.Actor().Position() != g.Actor().Home() {
		t.Errorf("actor at %+v, want home", g.Actor().Position())
	}
	if !g.Reveal(0) {
		t.Error("reveal rejected after restart")
	}
}

func TestActorConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ActorConfig)
		wantErr bool
	}{
		{"default", func(*ActorConfig) {}, false},
		{"zero jump speed", func(c *ActorConfig) { c.JumpSpeed = 0 }, true},
		{"negative return speed", func(c *ActorConfig) { c.ReturnSpeed = -1 }, true},
		{"negative height", func(c *ActorConfig) { c.JumpHeight = -1 }, true},
		{"flat jump", func(c *ActorConfig) { c.JumpHeight = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig().Actor
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
