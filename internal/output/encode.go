package output

import (
	"fmt"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"github.com/specialistvlad/odmoptions/internal/model"
)

// Encode serializes table. The default form keeps declaration order;
// canonical form applies RFC 8785 (sorted keys, fixed escaping) so that two
// tables with the same content encode to identical bytes.
func Encode(table *model.Table, canonical bool) ([]byte, error) {
	if table == nil {
		table = model.NewTable()
	}
	// Marshalling through encoding/json would re-escape <, > and &.
	payload, err := table.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding option table: %w", err)
	}
	if !canonical {
		return payload, nil
	}
	out, err := jsoncanonicalizer.Transform(payload)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing option table: %w", err)
	}
	return out, nil
}
