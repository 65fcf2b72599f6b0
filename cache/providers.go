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

package cache

import (
	"context"

	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/utils"
	"go.uber.org/fx"
)

func newCache(lc fx.Lifecycle, synchronizer utils.FireAndForgetSynchronizer, broker shared.PubSubBroker) shared.Cache {
	c := NewLRUCache(synchronizer, broker)
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return c.Listen(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return c
}

var Module = fx.Module("cache",
	fx.Provide(utils.NewFireAndForgetSynchronizer),
	fx.Provide(newCache),
)
