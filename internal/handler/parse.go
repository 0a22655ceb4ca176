package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// クライアントは数値を文字列で送ることがある。解釈できない値は0扱いにして、
// 既定値の適用はusecase側に任せる。

// 3 / 3.7 / "3" を受け付ける。それ以外は 0
type looseInt int64

func (v *looseInt) UnmarshalJSON(b []byte) error {
	*v = looseInt(parseLooseInt(unquote(b)))
	return nil
}

// 9.99 / "9.99" を受け付ける。それ以外は 0
type looseDecimal decimal.Decimal

func (v *looseDecimal) UnmarshalJSON(b []byte) error {
	d, err := decimal.NewFromString(unquote(b))
	if err != nil {
		d = decimal.Zero
	}
	*v = looseDecimal(d)
	return nil
}

func (v looseDecimal) Decimal() decimal.Decimal { return decimal.Decimal(v) }

func unquote(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			return strings.TrimSpace(s)
		}
	}
	return string(b)
}

func parseLooseInt(s string) int64 {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int64(f)
	}
	return 0
}

// queryInt は page などのクエリを読む。不正値は0。
func queryInt(v string) int32 {
	i := parseLooseInt(strings.TrimSpace(v))
	if i > math.MaxInt32 || i < math.MinInt32 {
		return 0
	}
	return int32(i)
}

func clampInt32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
