package csp

import "fmt"

func ExampleModel_Post() {
	m, _ := New()
	x, _ := m.NewVariable(-2, 255, "x")
	y, _ := m.NewVariable(-2, 255, "y")

	_ = m.Post(LtXY(x, y))

	fmt.Println(x)
	fmt.Println(y)
	// Output:
	// x (-2, 254) [-2..254]
	// y (-1, 255) [-1..255]
}

func ExampleNeqXC() {
	m, _ := New()
	x, _ := m.NewVariable(8, 255, "x")

	_ = m.Post(NeqXC(x, 10))

	fmt.Println(x)
	// Output:
	// x (8, 255) [8..9, 11..255]
}

func ExampleEqXYC() {
	m, _ := New()
	x, _ := m.NewVariable(8, 255, "x")
	y, _ := m.NewVariable(-2, 128, "y")

	_ = m.Post(EqXYC(x, y, 2))

	fmt.Println(x)
	fmt.Println(y)
	// Output:
	// x (8, 130) [8..130]
	// y (6, 128) [6..128]
}
