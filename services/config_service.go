package services

import (
	"encoding/json"

	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/pkg/errors"
)

// ConfigService stores small json documents in the configs table. The
// daemons keep their last run there and the leader election its lease.
type ConfigService struct {
	configRepository shared.ConfigRepository
}

func NewConfigService(configRepository shared.ConfigRepository) ConfigService {
	return ConfigService{configRepository: configRepository}
}

// GetJSONConfig decodes the value stored under key into v. A missing key
// surfaces as gorm.ErrRecordNotFound.
func (s ConfigService) GetJSONConfig(key string, v any) error {
	entry, err := s.configRepository.GetByKey(key)
	if err != nil {
		return errors.Wrapf(err, "could not read config %s", key)
	}
	if err := json.Unmarshal([]byte(entry.Val), v); err != nil {
		return errors.Wrapf(err, "config %s holds invalid json", key)
	}
	return nil
}

func (s ConfigService) SetJSONConfig(key string, v any) error {
	if key == "" {
		return errors.New("config key must not be empty")
	}
	val, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "could not encode config %s", key)
	}
	return s.configRepository.Save(&models.Config{Key: key, Val: string(val)})
}

func (s ConfigService) RemoveConfig(key string) error {
	return errors.Wrapf(s.configRepository.DeleteByKey(key), "could not remove config %s", key)
}
