package bitcoinconf

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/honeybbq/bitcoinconf/pkg/conferr"
	"github.com/honeybbq/bitcoinconf/pkg/options"
)

// Cast converts a raw option value to the Go type of typ.
//
// A boolean is true only for the exact string "1"; "true", "yes" and the
// empty string are all false, the way bitcoind reads them.
func Cast(raw string, typ options.TypeName) (any, error) {
	raw = strings.TrimSpace(raw)
	switch typ {
	case options.TypeString:
		return raw, nil
	case options.TypeStringArray:
		return []string{raw}, nil
	case options.TypeBoolean:
		return raw == "1", nil
	case options.TypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, conferr.Newf(conferr.KindValidation, conferr.ErrInvalidNumber, "%q", raw)
		}
		return n, nil
	default:
		return nil, conferr.New(conferr.KindInternal, fmt.Errorf("unknown type name %q", typ))
	}
}
