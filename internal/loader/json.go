package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type jsonLoader struct{}

func (jsonLoader) CanLoad(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".json")
}

func (jsonLoader) Load(path string, _ Options) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	return decodeJSON(b)
}

// decodeJSON reads an array of flat objects. The first object's keys, in
// document order, form the header; every object is reshaped to it.
func decodeJSON(b []byte) (*Table, error) {
	var objs []*orderedmap.OrderedMap[string, any]
	if err := json.Unmarshal(b, &objs); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if len(objs) == 0 || objs[0] == nil || objs[0].Len() == 0 {
		return nil, ErrEmpty
	}
	var header []string
	for p := objs[0].Oldest(); p != nil; p = p.Next() {
		header = append(header, p.Key)
	}
	records := make([][]string, len(objs))
	for i, obj := range objs {
		rec := make([]string, len(header))
		if obj != nil {
			for j, key := range header {
				v, _ := obj.Get(key)
				s, err := cellString(v)
				if err != nil {
					return nil, fmt.Errorf("row %d field %q: %w", i+1, key, err)
				}
				rec[j] = s
			}
		}
		records[i] = rec
	}
	return &Table{Format: "json", Header: header, Rows: rowsFrom(header, records)}, nil
}

// cellString renders a decoded JSON value as raw text. null becomes the
// empty string; nested arrays and objects keep their JSON form.
func cellString(v any) (string, error) {
	switch v.(type) {
	case nil:
		return "", nil
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return cast.ToStringE(v)
}
