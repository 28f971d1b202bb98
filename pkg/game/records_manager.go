package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// TrackRecord 单条轨道的累计行驶记录
type TrackRecord struct {
	Laps       int       `yaml:"laps"`       // 累计完成圈数
	Meters     float64   `yaml:"meters"`     // 累计里程（米）
	TopSpeed   float64   `yaml:"topSpeed"`   // 历史最高速度（米/秒）
	LastRidden time.Time `yaml:"lastRidden"` // 最近一次行驶时间
}

// recordsFile 持久化时的整体结构
type recordsFile struct {
	Tracks map[string]*TrackRecord `yaml:"tracks"`
}

// RecordsManager 行驶记录管理器
// 负责按轨道累计圈数、里程和最高速度，并持久化到 gdata
//
// 架构说明：
//   - 由 GameState 持有，行驶场景退出时调用 Apply 合并本次成绩
//   - 数据持久化到本地（YAML 格式，与设置文件保持一致）
type RecordsManager struct {
	gdataManager *gdata.Manager          // 可为 nil（降级模式，仅内存记录）
	records      map[string]*TrackRecord // 轨道 id -> 记录
}

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "tracks"
)

// NewRecordsManager 创建行驶记录管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewRecordsManager(gdataManager *gdata.Manager) (*RecordsManager, error) {
	rm := &RecordsManager{
		gdataManager: gdataManager,
		records:      make(map[string]*TrackRecord),
	}

	if err := rm.Load(); err != nil {
		// 加载失败不是致命错误，从空记录开始
		log.Printf("[RecordsManager] Warning: Failed to load records: %v (starting empty)", err)
	}

	return rm, nil
}

// Load 从 gdata 加载全部记录
func (rm *RecordsManager) Load() error {
	if rm.gdataManager == nil {
		return nil
	}

	if !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load ride records: %w", err)
	}

	var file recordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal ride records: %w", err)
	}

	if file.Tracks != nil {
		rm.records = file.Tracks
	}
	return nil
}

// Save 保存全部记录到 gdata
func (rm *RecordsManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(&recordsFile{Tracks: rm.records})
	if err != nil {
		return fmt.Errorf("failed to marshal ride records: %w", err)
	}

	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save ride records: %w", err)
	}

	return nil
}

// Get 返回指定轨道的记录副本，没有记录时返回零值
func (rm *RecordsManager) Get(trackID string) TrackRecord {
	if rec, ok := rm.records[trackID]; ok {
		return *rec
	}
	return TrackRecord{}
}

// Apply 合并一次行驶的成绩并保存
//
// 圈数和里程累加，最高速度取历史最大值，时间戳更新为当前时间
func (rm *RecordsManager) Apply(trackID string, laps int, meters, topSpeed float64) error {
	if trackID == "" || (laps == 0 && meters == 0) {
		return nil
	}

	rec, ok := rm.records[trackID]
	if !ok {
		rec = &TrackRecord{}
		rm.records[trackID] = rec
	}

	rec.Laps += laps
	rec.Meters += meters
	if topSpeed > rec.TopSpeed {
		rec.TopSpeed = topSpeed
	}
	rec.LastRidden = time.Now()

	return rm.Save()
}

// TrackIDs 返回有记录的轨道 id 数量
func (rm *RecordsManager) TrackIDs() int {
	return len(rm.records)
}
