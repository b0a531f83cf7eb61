// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"net/http"
	"sync"
)

// metrics is a singleton service that provides global access to a set of meters.
// It defaults to a no-op implementation; the process entry point may switch it
// to the prometheus implementation.
var metrics Metrics = defaultNoopMetrics()

// Metrics defines the interface for metrics service implementations.
type Metrics interface {
	GetOrCreateCountMeter(name string) CountMeter
	GetOrCreateCountVecMeter(name string, labels []string) CountVecMeter
	GetOrCreateGaugeMeter(name string) GaugeMeter
	GetOrCreateHandler() http.Handler
}

// HTTPHandler returns the http handler for retrieving metrics.
func HTTPHandler() http.Handler {
	return metrics.GetOrCreateHandler()
}

// CountMeter is a cumulative metric representing a single monotonically
// increasing counter.
type CountMeter interface {
	Add(int64)
}

// Counter returns a lazily bound count meter registered under name. The
// binding happens on first use, after the process has had the chance to
// switch the backend.
func Counter(name string) CountMeter {
	return &lazyCounter{name: name}
}

type lazyCounter struct {
	once  sync.Once
	name  string
	meter CountMeter
}

func (c *lazyCounter) Add(v int64) {
	c.once.Do(func() {
		c.meter = metrics.GetOrCreateCountMeter(c.name)
	})
	c.meter.Add(v)
}

// CountVecMeter is a CountMeter with a vector of label values.
type CountVecMeter interface {
	AddWithLabel(int64, map[string]string)
}

// CounterVec returns a lazily bound labeled count meter registered under name.
func CounterVec(name string, labels []string) CountVecMeter {
	return &lazyCounterVec{name: name, labels: labels}
}

type lazyCounterVec struct {
	once   sync.Once
	name   string
	labels []string
	meter  CountVecMeter
}

func (c *lazyCounterVec) AddWithLabel(v int64, labels map[string]string) {
	c.once.Do(func() {
		c.meter = metrics.GetOrCreateCountVecMeter(c.name, c.labels)
	})
	c.meter.AddWithLabel(v, labels)
}

// GaugeMeter is a metric representing a single numeric value which can
// arbitrarily go up and down.
type GaugeMeter interface {
	Set(int64)
	Add(int64)
}

// Gauge returns a lazily bound gauge meter registered under name.
func Gauge(name string) GaugeMeter {
	return &lazyGauge{name: name}
}

type lazyGauge struct {
	once  sync.Once
	name  string
	meter GaugeMeter
}

func (g *lazyGauge) bind() GaugeMeter {
	g.once.Do(func() {
		g.meter = metrics.GetOrCreateGaugeMeter(g.name)
	})
	return g.meter
}

func (g *lazyGauge) Set(v int64) { g.bind().Set(v) }

func (g *lazyGauge) Add(v int64) { g.bind().Add(v) }
