/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package xid

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics interface {
	ObserveTransition(status Status)
	ObserveAllocated(count uint64)
	ObserveSync(d time.Duration)
	IncErrors(op string)
}

var (
	metricsTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xidledger_transitions",
		Help: "Transaction status transitions persisted in the xid ledger",
	}, []string{"status"})

	metricsAllocated = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "xidledger_allocated",
		Help: "Number of xids allocated in the last opened ledger",
	})

	metricsSyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "xidledger_sync_duration_seconds",
		Help:    "Time spent making ledger writes durable",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	metricsErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xidledger_errors",
		Help: "Failed xid ledger operations",
	}, []string{"op"})
)

type prometheusMetrics struct{}

func NewPrometheusMetrics() Metrics {
	return &prometheusMetrics{}
}

func (m *prometheusMetrics) ObserveTransition(status Status) {
	metricsTransitions.WithLabelValues(status.String()).Inc()
}

func (m *prometheusMetrics) ObserveAllocated(count uint64) {
	metricsAllocated.Set(float64(count))
}

func (m *prometheusMetrics) ObserveSync(d time.Duration) {
	metricsSyncDuration.Observe(d.Seconds())
}

func (m *prometheusMetrics) IncErrors(op string) {
	metricsErrors.WithLabelValues(op).Inc()
}

var _ Metrics = &nopMetrics{}

type nopMetrics struct{}

func NewNopMetrics() Metrics {
	return &nopMetrics{}
}

func (m *nopMetrics) ObserveTransition(status Status) {}

func (m *nopMetrics) ObserveAllocated(count uint64) {}

func (m *nopMetrics) ObserveSync(d time.Duration) {}

func (m *nopMetrics) IncErrors(op string) {}
