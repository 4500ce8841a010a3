package heyreach

import (
	"context"
	"encoding/json"

	logf "sigs.k8s.io/controller-runtime/pkg/log"
)

// pageInfoDTO is the nested pagination block of the older envelope shape.
type pageInfoDTO struct {
	Offset     uint32 `json:"offset"`
	Limit      uint32 `json:"limit"`
	TotalCount uint32 `json:"totalCount"`
}

// pageEnvelope holds every envelope shape the API has shipped:
//
//	{"totalCount": 5, "items": [...]}
//	{"page": {"offset": 0, "limit": 10, "totalCount": 5}, "items": [...]}
//
// Items are kept raw so each one can be decoded on its own.
type pageEnvelope struct {
	TotalCount *uint32           `json:"totalCount"`
	Page       *pageInfoDTO      `json:"page"`
	Items      []json.RawMessage `json:"items"`
}

type totalCountDecoder func(pageEnvelope) (uint32, bool)

// totalCountDecoders are tried in order; the first that matches wins.
var totalCountDecoders = []totalCountDecoder{
	directTotalCount,
	nestedTotalCount,
	itemCount,
}

func directTotalCount(env pageEnvelope) (uint32, bool) {
	if env.TotalCount == nil {
		return 0, false
	}
	return *env.TotalCount, true
}

func nestedTotalCount(env pageEnvelope) (uint32, bool) {
	if env.Page == nil {
		return 0, false
	}
	return env.Page.TotalCount, true
}

func itemCount(env pageEnvelope) (uint32, bool) {
	return uint32(len(env.Items)), true
}

// reconcilePage converts an envelope into a Page. An item whose fields do not
// match the wire shape keeps the fields that did decode and zero values for
// the rest; no item is dropped and no item fails the page.
func reconcilePage[W any, T any](ctx context.Context, env pageEnvelope, convert func(W) T) *Page[T] {
	log := logf.FromContext(ctx).WithName("heyreach")

	page := &Page[T]{Items: make([]T, 0, len(env.Items))}
	for _, decode := range totalCountDecoders {
		if total, ok := decode(env); ok {
			page.TotalCount = total
			break
		}
	}

	for i, raw := range env.Items {
		var item W
		if err := json.Unmarshal(raw, &item); err != nil {
			log.V(1).Info("Defaulting undecodable item fields", "index", i, "error", err.Error())
		}
		page.Items = append(page.Items, convert(item))
	}

	return page
}
