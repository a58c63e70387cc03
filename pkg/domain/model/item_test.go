package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/relops-lab/glgate/pkg/domain/model"
)

func TestItemProjectionDropsExtraFields(t *testing.T) {
	upstream := `{
		"id": 42,
		"iid": 7,
		"title": "Fix login flow",
		"description": "A very long description",
		"created_at": "2023-03-01T12:00:00.000Z",
		"updated_at": "2023-03-02T12:00:00.000Z",
		"state": "opened",
		"web_url": "https://gitlab.example.com/ns/app/-/issues/7",
		"author": {"id": 1, "username": "alice"},
		"labels": ["bug", "p1"]
	}`

	var item model.Item
	gt.NoError(t, json.Unmarshal([]byte(upstream), &item)).Required()

	gt.Equal(t, item, model.Item{
		ID:        42,
		Title:     "Fix login flow",
		CreatedAt: "2023-03-01T12:00:00.000Z",
		State:     "opened",
		WebURL:    "https://gitlab.example.com/ns/app/-/issues/7",
	})
}

func TestItemSerializesExactlyFiveKeys(t *testing.T) {
	item := model.Item{
		ID:        42,
		Title:     "Fix login flow",
		CreatedAt: "2023-03-01T12:00:00.000Z",
		State:     "opened",
		WebURL:    "https://gitlab.example.com/ns/app/-/issues/7",
	}

	raw, err := json.Marshal(item)
	gt.NoError(t, err).Required()

	var keys map[string]any
	gt.NoError(t, json.Unmarshal(raw, &keys)).Required()

	gt.Equal(t, len(keys), 5)
	for _, key := range []string{"id", "title", "created_at", "state", "web_url"} {
		if _, ok := keys[key]; !ok {
			t.Errorf("missing key %q in serialized item", key)
		}
	}
}
