package tablestore

import (
	"context"
	"encoding/json"
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

// Client клиент удаленного табличного хранилища (Supabase / PostgREST)
type Client struct {
	supabase *supa.Client
	log      Logger
}

// NewClient создает клиента Supabase
func NewClient(url, key string, log Logger) (*Client, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	return &Client{supabase: client, log: log}, nil
}

// Insert вставляет строку в таблицу и возвращает ID вставленной строки
// Если хранилище не вернуло ID (таблица без колонки id), возвращается 0.
func (c *Client) Insert(ctx context.Context, table string, row interface{}) (int64, error) {
	// supabase-go не принимает контекст, проверяем отмену до запроса
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	data, _, err := c.supabase.From(table).Insert(row, false, "", "representation", "").Execute()
	if err != nil {
		return 0, fmt.Errorf("%w: table %s: %v", ErrInsert, table, err)
	}

	var inserted []insertedRow
	if err := json.Unmarshal(data, &inserted); err != nil {
		return 0, fmt.Errorf("%w: table %s: %v", ErrInvalidResponse, table, err)
	}
	if len(inserted) == 0 {
		return 0, nil
	}

	c.log.Info("tablestore: inserted row id=%d into %s", inserted[0].ID, table)
	return inserted[0].ID, nil
}
