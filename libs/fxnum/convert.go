package fxnum

import (
	"math"
	"math/big"
	"strings"

	"github.com/beatoz/fxmath-go/types/xerrors"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// fixedScaleDigits represents the default scale (7 decimal places) used by robaho/fixed.
const fixedScaleDigits = 7

// Pow2Decimal returns 2^n as an exact decimal.
func Pow2Decimal(n uint) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), n), 0)
}

// FromDecimal rounds d to the nearest raw value of f, saturating.
func (f Format) FromDecimal(d decimal.Decimal) int64 {
	scaled := d.Mul(Pow2Decimal(f.FracBits)).Round(0).BigInt()
	if !scaled.IsInt64() {
		return f.saturate(scaled.Sign() > 0)
	}
	return f.Clamp(scaled.Int64())
}

// ToDecimal returns the exact decimal value of raw.
// raw / 2^F equals raw * 5^F / 10^F, which needs no division.
func (f Format) ToDecimal(raw int64) decimal.Decimal {
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(f.FracBits)), nil)
	five.Mul(five, big.NewInt(raw))
	return decimal.NewFromBigInt(five, -int32(f.FracBits))
}

// Parse reads a decimal string into a raw value of f.
func (f Format) Parse(s string) (int64, xerrors.XError) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, xerrors.ErrInvalidNumberString.Wrapf("%q", s)
	}
	scaled := d.Mul(Pow2Decimal(f.FracBits)).Round(0).BigInt()
	if !scaled.IsInt64() || !f.Contains(scaled.Int64()) {
		return 0, xerrors.ErrOverFlow.Wrapf("%s is out of %v range", s, f)
	}
	return scaled.Int64(), nil
}

// Text formats raw as an exact decimal string.
func (f Format) Text(raw int64) string {
	return f.ToDecimal(raw).String()
}

// FromFloat64 rounds v to the nearest raw value of f, saturating.
// NaN maps to zero.
func (f Format) FromFloat64(v float64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	s := math.Round(math.Ldexp(v, int(f.FracBits)))
	lim := math.Ldexp(1, int(f.Bits()-1))
	if s >= lim {
		return f.Max()
	}
	if s < -lim {
		return f.Min()
	}
	return int64(s)
}

func (f Format) ToFloat64(raw int64) float64 {
	return math.Ldexp(float64(raw), -int(f.FracBits))
}

// ToFixed rounds raw to the 7 decimal places of robaho/fixed.
func (f Format) ToFixed(raw int64) fixed.Fixed {
	d := f.ToDecimal(raw).Round(fixedScaleDigits)
	return fixed.NewI(d.Mul(decimal.New(1, fixedScaleDigits)).IntPart(), fixedScaleDigits)
}
