// Package clickhouse reads the address index kept in ClickHouse.
package clickhouse

import (
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-query/internal/query"
)

var _ query.AddressIndex = (*Repository)(nil)

// Repository answers address queries for one coin and network.
type Repository struct {
	conn    Conn
	metrics Metrics
	coin    model.Coin
	network model.Network
}

func NewRepository(dsn string, coin model.Coin, network model.Network, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics, coin: coin, network: network}, nil
}

func (r *Repository) Close() error {
	return r.conn.Close()
}

func confirmations(height, tip uint32) uint32 {
	if height == 0 || height > tip {
		return 0
	}
	return tip - height + 1
}
