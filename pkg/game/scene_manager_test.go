package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// MockSaveableScene additionally implements Saveable.
type MockSaveableScene struct {
	MockScene
	saveCalled bool
	saveResult bool
}

// SaveOnExit records the call and returns the configured result.
func (m *MockSaveableScene) SaveOnExit() bool {
	m.saveCalled = true
	return m.saveResult
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.currentScene != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
	if sm.GetCurrentScene() != mockScene {
		t.Error("GetCurrentScene() did not return the active scene")
	}
}

// TestSceneManagerSwitchSavesOldScene verifies the Saveable hook fires on switch.
func TestSceneManagerSwitchSavesOldScene(t *testing.T) {
	sm := NewSceneManager()
	saveable := &MockSaveableScene{saveResult: true}
	next := &MockScene{}

	sm.SwitchTo(saveable)
	if saveable.saveCalled {
		t.Error("SaveOnExit should not fire when entering a scene")
	}

	sm.SwitchTo(next)
	if !saveable.saveCalled {
		t.Error("SaveOnExit was not called when leaving the scene")
	}
	if sm.currentScene != next {
		t.Error("Switch did not complete after save")
	}
}

// TestSceneManagerSwitchSaveFailure verifies a failed save does not block switching.
func TestSceneManagerSwitchSaveFailure(t *testing.T) {
	sm := NewSceneManager()
	saveable := &MockSaveableScene{saveResult: false}
	next := &MockScene{}

	sm.SwitchTo(saveable)
	sm.SwitchTo(next)

	if sm.currentScene != next {
		t.Error("Switch should proceed even when SaveOnExit fails")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	// Don't set any scene, currentScene should be nil
	sm.Update(0.016) // Should not panic
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	// Create a dummy screen image
	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerLoadTrackWithoutFactory verifies LoadTrack without a factory is a no-op.
func TestSceneManagerLoadTrackWithoutFactory(t *testing.T) {
	sm := NewSceneManager()
	sm.LoadTrack("classic-loop") // Should not panic
	if sm.currentScene != nil {
		t.Error("LoadTrack without factory should not set a scene")
	}
}

// TestSceneManagerLoadTrack verifies the factory wiring.
func TestSceneManagerLoadTrack(t *testing.T) {
	sm := NewSceneManager()

	created := ""
	target := &MockScene{}
	sm.SetSceneFactory(func(trackID string) Scene {
		created = trackID
		return target
	})

	sm.LoadTrack("figure-eight")

	if created != "figure-eight" {
		t.Errorf("factory received %q, want figure-eight", created)
	}
	if sm.currentScene != target {
		t.Error("LoadTrack did not switch to the factory scene")
	}
}

// TestSceneManagerLoadTrackNilScene verifies a nil factory result keeps the old scene.
func TestSceneManagerLoadTrackNilScene(t *testing.T) {
	sm := NewSceneManager()
	old := &MockScene{}
	sm.SwitchTo(old)
	sm.SetSceneFactory(func(trackID string) Scene { return nil })

	sm.LoadTrack("unknown")

	if sm.currentScene != old {
		t.Error("nil factory result should keep the current scene")
	}
}
