/*
 (c) Copyright [2023] Open Text.
 Licensed under the Apache License, Version 2.0 (the "License");
 You may not use this file except in compliance with the License.
 You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package qsops

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"golang.org/x/sync/singleflight"

	"github.com/qsadmin/qsadmin/qsops/vlog"
)

// ClientKey identifies the credentials and endpoint a client is built for.
type ClientKey struct {
	Profile  string
	Region   string
	Endpoint string
}

func (k ClientKey) String() string {
	return fmt.Sprintf("profile=%s region=%s endpoint=%s", k.Profile, k.Region, k.Endpoint)
}

// ClientFactory builds a new client for a key.
type ClientFactory func(ctx context.Context, key ClientKey) (Client, error)

// ClientPool builds at most one client per key and hands the same client
// to every caller asking for that key. It is safe for concurrent use.
type ClientPool struct {
	factory ClientFactory

	mu      sync.RWMutex
	clients map[ClientKey]Client
	group   singleflight.Group
}

func NewClientPool(factory ClientFactory) *ClientPool {
	return &ClientPool{
		factory: factory,
		clients: make(map[ClientKey]Client),
	}
}

// Get returns the client for key, building it on first use. Concurrent
// first requests for one key share a single build. A failed build is not
// cached.
func (p *ClientPool) Get(ctx context.Context, key ClientKey) (Client, error) {
	if c, found := p.lookup(key); found {
		return c, nil
	}
	v, err, _ := p.group.Do(key.String(), func() (any, error) {
		if c, found := p.lookup(key); found {
			return c, nil
		}
		c, err := p.factory(ctx, key)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.clients[key] = c
		p.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create a client for %s: %w", key, err)
	}
	return v.(Client), nil
}

func (p *ClientPool) lookup(key ClientKey) (Client, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, found := p.clients[key]
	return c, found
}

// Len is the number of clients built so far.
func (p *ClientPool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.clients)
}

// DefaultClientFactory builds SDK backed clients from the shared AWS
// configuration: environment, shared config and credentials files.
func DefaultClientFactory(logger vlog.Printer) ClientFactory {
	return func(ctx context.Context, key ClientKey) (Client, error) {
		var optFns []func(*config.LoadOptions) error
		if key.Region != "" {
			optFns = append(optFns, config.WithRegion(key.Region))
		}
		if key.Profile != "" {
			optFns = append(optFns, config.WithSharedConfigProfile(key.Profile))
		}
		cfg, err := config.LoadDefaultConfig(ctx, optFns...)
		if err != nil {
			return nil, fmt.Errorf("failed to load the AWS configuration: %w", err)
		}
		logger.V(1).Info("Loaded AWS configuration", "region", cfg.Region, "profile", key.Profile)
		return NewQuickSightClient(cfg, key.Endpoint, logger), nil
	}
}
