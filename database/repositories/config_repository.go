// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/l3montree-dev/depgraph/database/models"
	"gorm.io/gorm"
)

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *configRepository {
	return &configRepository{
		db: db,
	}
}

func (r *configRepository) GetByKey(key string) (models.Config, error) {
	var config models.Config
	err := r.db.Where("key = ?", key).First(&config).Error
	return config, err
}

func (r *configRepository) Save(config *models.Config) error {
	return r.db.Save(config).Error
}

func (r *configRepository) DeleteByKey(key string) error {
	return r.db.Where("key = ?", key).Delete(&models.Config{}).Error
}
