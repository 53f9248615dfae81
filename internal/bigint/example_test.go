package bigint_test

import (
	"fmt"

	"github.com/agbru/bigcalc/internal/bigint"
)

// ExampleParseRadix parses a hexadecimal string and prints it in two radixes.
func ExampleParseRadix() {
	x, err := bigint.ParseRadix("ff", 16)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	hex, _ := x.Text(16)
	fmt.Println(hex, x)
	// Output:
	// ff 255
}

// ExampleInt_DivRem shows that division truncates toward zero and the
// remainder takes the sign of the dividend.
func ExampleInt_DivRem() {
	q, r, err := bigint.NewInt(-7).DivRem(bigint.NewInt(2))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	m, _ := bigint.NewInt(-7).Mod(bigint.NewInt(2))
	fmt.Println(q, r, m)
	// Output:
	// -3 -1 1
}

// ExampleInt_ModPow computes a modular power with operands that do not fit
// in 64-bit intermediate products.
func ExampleInt_ModPow() {
	x := bigint.MustParse("14123999253219")
	e := bigint.MustParse("70276475859277")
	m := bigint.MustParse("86706662670157")
	r, err := x.ModPow(e, m)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(r)
	// Output:
	// 285102795107
}

// ExampleInt_And shows two's-complement semantics on negative operands.
func ExampleInt_And() {
	x, y := bigint.NewInt(-12), bigint.NewInt(10)
	fmt.Println(x.And(y), x.Or(y), x.Xor(y), x.Not())
	// Output:
	// 0 -2 -2 11
}

// ExampleOracle_NextProbablePrime uses a seeded oracle for reproducible
// results.
func ExampleOracle_NextProbablePrime() {
	o := bigint.NewOracle(bigint.WithSeed(1))
	p, err := o.NextProbablePrime(bigint.NewInt(1000000), 20, 100)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(p)
	// Output:
	// 1000003
}

// ExampleInt_Format shows the supported fmt verbs.
func ExampleInt_Format() {
	x := bigint.NewInt(255)
	fmt.Printf("%d %x %#X %b %#o\n", x, x, x, x, x)
	// Output:
	// 255 ff 0XFF 11111111 0o377
}
