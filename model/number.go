package model

import (
	"fmt"
	"log"
	"math"
	"math/big"
	"strconv"
)

// Number abstraction

type Number struct {
	value     float64
	precision int8
}

// AsFloat gives a float64 representation
func (n Number) AsFloat() float64 {
	return n.value
}

// Precision gives the precision of the Number
func (n Number) Precision() int8 {
	return n.precision
}

// AsString gives a string representation
func (n Number) AsString() string {
	return fmt.Sprintf(fmt.Sprintf("%%.%df", n.Precision()), n.AsFloat())
}

// Add returns a new Number after adding the passed in Number
func (n Number) Add(n2 Number) *Number {
	newPrecision := minPrecision(n, n2)
	return NumberFromFloat(n.AsFloat()+n2.AsFloat(), newPrecision)
}

// Subtract returns a new Number after subtracting out the passed in Number
func (n Number) Subtract(n2 Number) *Number {
	newPrecision := minPrecision(n, n2)
	return NumberFromFloat(n.AsFloat()-n2.AsFloat(), newPrecision)
}

// String is the Stringer interface impl.
func (n Number) String() string {
	return n.AsString()
}

// NumberFromFloat makes a Number from a float by rounding up
func NumberFromFloat(f float64, precision int8) *Number {
	return &Number{
		value:     toFixed(f, precision),
		precision: precision,
	}
}

// NumberFromString makes a Number from a string, by calling NumberFromFloat
func NumberFromString(s string, precision int8) (*Number, error) {
	parsed, e := strconv.ParseFloat(s, 64)
	if e != nil {
		return nil, e
	}
	return NumberFromFloat(parsed, precision), nil
}

// MustNumberFromString panics when there's an error
func MustNumberFromString(s string, precision int8) *Number {
	parsed, e := NumberFromString(s, precision)
	if e != nil {
		log.Fatal(e)
	}
	return parsed
}

func minPrecision(n1 Number, n2 Number) int8 {
	if n1.precision < n2.precision {
		return n1.precision
	}
	return n2.precision
}

func round(num float64) int64 {
	return int64(num + math.Copysign(0.5, num))
}

func toFixed(num float64, precision int8) float64 {
	bigNum := big.NewRat(1, 1)
	bigNum = bigNum.SetFloat64(num)
	bigPow := big.NewRat(1, 1)
	bigPow = bigPow.SetFloat64(math.Pow(10, float64(precision)))

	// multiply
	bigMultiply := bigNum.Mul(bigNum, bigPow)

	// convert to int after rounding
	bigMultiplyFloat64, _ := bigMultiply.Float64()
	roundedInt64 := round(bigMultiplyFloat64)
	bigMultiplyIntFloat64 := big.NewRat(1, 1)
	bigMultiplyIntFloat64 = bigMultiplyIntFloat64.SetInt64(roundedInt64)

	// divide it
	bigPowInverse := bigPow.Inv(bigPow)
	bigResult := bigMultiplyIntFloat64.Mul(bigMultiplyIntFloat64, bigPowInverse)

	result, _ := bigResult.Float64()
	return result
}
