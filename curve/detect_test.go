package curve

import (
	"testing"

	"github.com/lixenwraith/graphwar/vmath"
)

// line returns points (i, 0) for i in [0, n)
func line(n int) []vmath.Point {
	points := make([]vmath.Point, n)
	for i := range points {
		points[i] = vmath.Point{X: float64(i)}
	}
	return points
}

// TestDetectObstacleTruncates verifies the cut at the obstacle and enemy events past it
func TestDetectObstacleTruncates(t *testing.T) {
	points := line(12)
	enemies := []Circle{{Center: vmath.Point{X: 8}, Radius: 0.5}}
	obstacles := []Circle{{Center: vmath.Point{X: 5}, Radius: 0.5}}

	res := Detect(points, enemies, obstacles)

	if !res.Blocked {
		t.Fatal("Expected curve to be blocked")
	}
	if res.Cut != 5 {
		t.Errorf("Expected cut at 5, got %d", res.Cut)
	}
	if len(res.Points) != 6 || res.Points[5] != points[5] {
		t.Errorf("Expected 6 points ending at index 5, got %v", res.Points)
	}
	if len(res.Events) != 2 {
		t.Fatalf("Expected 2 events, got %v", res.Events)
	}

	obs := res.Events[0]
	if obs.Kind != KindObstacle || obs.Frame != 5 || obs.Index != 0 || obs.Center != obstacles[0].Center {
		t.Errorf("Unexpected obstacle event: %+v", obs)
	}
	enemy := res.Events[1]
	if enemy.Kind != KindEnemy || enemy.Frame != 8 {
		t.Errorf("Unexpected enemy event: %+v", enemy)
	}

	visible := res.Visible()
	if len(visible) != 1 || visible[0].Kind != KindObstacle {
		t.Errorf("Expected only the obstacle event to be visible, got %v", visible)
	}
	if res.Hit() {
		t.Error("Expected no visible enemy hit")
	}
}

// TestDetectDeduplicates verifies one event per entity at its lowest frame
func TestDetectDeduplicates(t *testing.T) {
	enemies := []Circle{{Center: vmath.Point{X: 3.5}, Radius: 0.6}}
	res := Detect(line(10), enemies, nil)

	if len(res.Events) != 1 {
		t.Fatalf("Expected 1 event, got %v", res.Events)
	}
	if res.Events[0].Frame != 3 {
		t.Errorf("Expected lower frame 3, got %d", res.Events[0].Frame)
	}
	if res.Blocked || res.Cut != 9 || len(res.Points) != 10 {
		t.Errorf("Expected full unblocked curve, got cut=%d len=%d", res.Cut, len(res.Points))
	}
}

// TestDetectEnemiesDoNotStop verifies multiple kills along one curve
func TestDetectEnemiesDoNotStop(t *testing.T) {
	enemies := []Circle{
		{Center: vmath.Point{X: 7}, Radius: 1},
		{Center: vmath.Point{X: 2, Y: 0.5}, Radius: 1},
		{Center: vmath.Point{X: 4, Y: 3}, Radius: 1}, // missed
	}
	res := Detect(line(10), enemies, nil)

	if len(res.Events) != 2 {
		t.Fatalf("Expected 2 events, got %v", res.Events)
	}
	if res.Events[0].Index != 1 || res.Events[1].Index != 0 {
		t.Errorf("Expected events in frame order (enemy 1 then 0), got %v", res.Events)
	}
	if !res.Hit() {
		t.Error("Expected a visible enemy hit")
	}
}

// TestDetectTruncatesAtLowestObstacleFrame verifies order of discovery does not pick the cut
func TestDetectTruncatesAtLowestObstacleFrame(t *testing.T) {
	obstacles := []Circle{
		{Center: vmath.Point{X: 9}, Radius: 0.5},
		{Center: vmath.Point{X: 4}, Radius: 1.5}, // frames 3..5
	}
	res := Detect(line(12), nil, obstacles)

	if res.Cut != 3 {
		t.Errorf("Expected cut at 3, got %d", res.Cut)
	}
	if len(res.Events) != 2 || res.Events[0].Index != 1 || res.Events[1].Index != 0 {
		t.Errorf("Expected obstacle 1 then obstacle 0, got %v", res.Events)
	}
}

// TestDetectBoundaryContact verifies distance equal to radius counts
func TestDetectBoundaryContact(t *testing.T) {
	enemies := []Circle{{Center: vmath.Point{X: 2, Y: 1}, Radius: 1}}
	res := Detect(line(5), enemies, nil)
	if len(res.Events) != 1 || res.Events[0].Frame != 2 {
		t.Errorf("Expected tangent contact at frame 2, got %v", res.Events)
	}
}

// TestDetectSameIndexDifferentKinds verifies dedup keys on kind as well as index
func TestDetectSameIndexDifferentKinds(t *testing.T) {
	enemies := []Circle{{Center: vmath.Point{X: 1}, Radius: 0.2}}
	obstacles := []Circle{{Center: vmath.Point{X: 6}, Radius: 0.2}}
	res := Detect(line(8), enemies, obstacles)

	if len(res.Events) != 2 {
		t.Fatalf("Expected enemy 0 and obstacle 0 as separate events, got %v", res.Events)
	}
	if !res.Hit() {
		t.Error("Expected enemy hit before the obstacle to be visible")
	}
}

// TestDetectReached verifies per-frame consultation clamps to the cut
func TestDetectReached(t *testing.T) {
	enemies := []Circle{
		{Center: vmath.Point{X: 1}, Radius: 0.2},
		{Center: vmath.Point{X: 3}, Radius: 0.2},
		{Center: vmath.Point{X: 9}, Radius: 0.2},
	}
	obstacles := []Circle{{Center: vmath.Point{X: 6}, Radius: 0.2}}
	res := Detect(line(12), enemies, obstacles)

	if got := len(res.Reached(0)); got != 0 {
		t.Errorf("Expected no events by frame 0, got %d", got)
	}
	if got := len(res.Reached(2)); got != 1 {
		t.Errorf("Expected 1 event by frame 2, got %d", got)
	}
	if got := len(res.Reached(100)); got != 3 {
		t.Errorf("Expected 3 events clamped to cut, got %d", got)
	}
}

// TestDetectEmptyCurve verifies an empty point list is a valid input
func TestDetectEmptyCurve(t *testing.T) {
	res := Detect(nil, []Circle{{Radius: 1}}, []Circle{{Radius: 1}})
	if res.Cut != -1 || len(res.Points) != 0 || len(res.Events) != 0 || res.Blocked {
		t.Errorf("Unexpected result for empty curve: %+v", res)
	}
	if len(res.Visible()) != 0 {
		t.Error("Expected no visible events")
	}
}
