package game

import (
	"testing"
	"time"
)

// TestRecordsManagerNilGdata 测试降级模式下的记录管理
func TestRecordsManagerNilGdata(t *testing.T) {
	rm, err := NewRecordsManager(nil)
	if err != nil {
		t.Fatalf("NewRecordsManager(nil) error: %v", err)
	}

	if got := rm.Get("classic-loop"); got.Laps != 0 || got.Meters != 0 {
		t.Errorf("空记录: got %+v, want 零值", got)
	}

	if err := rm.Apply("classic-loop", 3, 420.5, 18.2); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	rec := rm.Get("classic-loop")
	if rec.Laps != 3 {
		t.Errorf("Laps: got %d, want 3", rec.Laps)
	}
	if rec.Meters != 420.5 {
		t.Errorf("Meters: got %v, want 420.5", rec.Meters)
	}
	if rec.TopSpeed != 18.2 {
		t.Errorf("TopSpeed: got %v, want 18.2", rec.TopSpeed)
	}
	if rec.LastRidden.IsZero() {
		t.Error("LastRidden 未更新")
	}
}

// TestRecordsApplyMerges 测试多次行驶的合并语义
func TestRecordsApplyMerges(t *testing.T) {
	rm, _ := NewRecordsManager(nil)

	if err := rm.Apply("figure-eight", 2, 300, 20); err != nil {
		t.Fatalf("第一次 Apply: %v", err)
	}
	if err := rm.Apply("figure-eight", 1, 150, 15); err != nil {
		t.Fatalf("第二次 Apply: %v", err)
	}

	rec := rm.Get("figure-eight")
	if rec.Laps != 3 {
		t.Errorf("累计 Laps: got %d, want 3", rec.Laps)
	}
	if rec.Meters != 450 {
		t.Errorf("累计 Meters: got %v, want 450", rec.Meters)
	}
	// 最高速度取最大值而非最后一次
	if rec.TopSpeed != 20 {
		t.Errorf("TopSpeed: got %v, want 20", rec.TopSpeed)
	}
}

// TestRecordsApplyIgnoresEmptyRide 测试空行驶不产生记录
func TestRecordsApplyIgnoresEmptyRide(t *testing.T) {
	rm, _ := NewRecordsManager(nil)

	if err := rm.Apply("classic-loop", 0, 0, 12); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if rm.TrackIDs() != 0 {
		t.Errorf("空行驶后记录数: got %d, want 0", rm.TrackIDs())
	}

	if err := rm.Apply("", 5, 100, 12); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if rm.TrackIDs() != 0 {
		t.Errorf("空轨道 id 后记录数: got %d, want 0", rm.TrackIDs())
	}
}

// TestRecordsLoadSave 测试记录的持久化
func TestRecordsLoadSave(t *testing.T) {
	gdataManager := newTestGdata(t, "test_records_load_save")

	rm1, err := NewRecordsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewRecordsManager() error: %v", err)
	}

	before := time.Now().Add(-time.Second)
	if err := rm1.Apply("alpine-rush", 7, 1234.5, 31.7); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	// 重新加载验证
	rm2, err := NewRecordsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewRecordsManager() error on reload: %v", err)
	}

	rec := rm2.Get("alpine-rush")
	if rec.Laps != 7 {
		t.Errorf("Loaded Laps: got %d, want 7", rec.Laps)
	}
	if rec.Meters != 1234.5 {
		t.Errorf("Loaded Meters: got %v, want 1234.5", rec.Meters)
	}
	if rec.TopSpeed != 31.7 {
		t.Errorf("Loaded TopSpeed: got %v, want 31.7", rec.TopSpeed)
	}
	if rec.LastRidden.Before(before) {
		t.Errorf("Loaded LastRidden %v 早于写入时间 %v", rec.LastRidden, before)
	}

	// 其他轨道不受影响
	if other := rm2.Get("classic-loop"); other.Laps != 0 {
		t.Errorf("无关轨道出现记录: %+v", other)
	}
}
