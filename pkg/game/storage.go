package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// loadYAMLProp 读取 gdata 中的 YAML 对象属性
//
// 返回 false 表示属性不存在（或降级模式），out 保持不变。
func loadYAMLProp(m *gdata.Manager, object, prop string, out any) (bool, error) {
	if m == nil || !m.ObjectPropExists(object, prop) {
		return false, nil
	}

	data, err := m.LoadObjectProp(object, prop)
	if err != nil {
		return false, fmt.Errorf("failed to load %s/%s: %w", object, prop, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s/%s: %w", object, prop, err)
	}
	return true, nil
}

// saveYAMLProp 把 v 序列化为 YAML 写入 gdata，降级模式下什么也不做
func saveYAMLProp(m *gdata.Manager, object, prop string, v any) error {
	if m == nil {
		return nil
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", object, prop, err)
	}
	if err := m.SaveObjectProp(object, prop, data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", object, prop, err)
	}
	return nil
}
