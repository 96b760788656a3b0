package spg_test

import (
	"errors"
	"fmt"

	"github.com/lingrottin/spg.go"
	"github.com/lingrottin/spg.go/log"
	"github.com/lingrottin/spg.go/sampler"
)

// This example demonstrates the mini-language.
func ExamplePattern() {
	// Letters and digits from the secure source.
	password, err := spg.Gen(spg.Pattern("saA0"), 16)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(password))

	// Everything after c is used as-is.
	ones, err := spg.Gen(spg.Pattern("c1"), 5)
	if err != nil {
		panic(err)
	}
	fmt.Println(ones)

	// Output:
	// 16
	// 11111
}

// This example demonstrates how to create a Generator with unbiased secure
// sampling and a custom notice logger.
func ExampleCreate() {
	g := spg.Create(
		true,
		spg.WithMode(sampler.ModeRejection),
		spg.WithLogger(func(msg string) {
			fmt.Println("notice:", msg)
		}),
	)
	s, err := g.Generate(spg.GenerationConfig{Characters: ""}, 10)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", s)

	// Output:
	// notice: spg: got empty config string, ignoring generation...
	// ""
}

func ExampleGenerator_Generate_invalidArgument() {
	_, err := spg.New(spg.WithLogger(log.NopWrapper)).Generate(nil, 10)
	fmt.Println(errors.Is(err, spg.ErrInvalidArgument))
	fmt.Println(err)

	// Output:
	// true
	// spg: missing parameter: config
}
