// Package money 定義金額的定點表示
// 核心一律使用 int64 最小貨幣單位 (分)，decimal 只出現在輸入輸出邊界，
// 確保帳務計算精確到分、不產生浮點漂移
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Scale 精度：小數點後 2 位 (分)
const Scale = 100

var (
	// ErrMalformed 金額字串無法解析
	ErrMalformed = errors.New("malformed amount")

	// ErrPrecision 金額帶有低於分的精度；為了精確性直接拒絕，不做四捨五入
	ErrPrecision = errors.New("amount has sub-cent precision")
)

var scale = decimal.NewFromInt(Scale)

// Parse 解析十進位金額字串為最小貨幣單位
// 允許負值，正負號的業務規則由核心引擎判定
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrMalformed
	}
	return FromDecimal(d)
}

// FromDecimal 把 decimal 轉為最小貨幣單位
func FromDecimal(d decimal.Decimal) (int64, error) {
	scaled := d.Mul(scale)
	if !scaled.IsInteger() {
		return 0, ErrPrecision
	}
	return scaled.IntPart(), nil
}

// ToDecimal 把最小貨幣單位轉回 decimal
func ToDecimal(units int64) decimal.Decimal {
	return decimal.New(units, -2)
}

// Format 以固定兩位小數輸出金額
func Format(units int64) string {
	return ToDecimal(units).StringFixed(2)
}
