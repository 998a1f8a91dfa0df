package main

import (
	"fmt"
	"strings"

	"nickandperla.net/reckon/internal/calc"
	"nickandperla.net/reckon/internal/parse"
	"nickandperla.net/reckon/pkg/reckon"
)

// runDemo walks the calculator surface: batch evaluation, statistics,
// the memoized integer helpers, and the memory register.
func runDemo(session *reckon.Session) {
	fmt.Println("reckon demo")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("Binary operators: " + strings.Join(parse.BinaryOperators, " "))

	fmt.Println("\nSquares of 1..10:")
	squares := make([]string, 0, 10)
	for i := 1; i <= 10; i++ {
		squares = append(squares, fmt.Sprintf("%d ** 2", i))
	}
	for _, line := range session.EvalBatch(squares) {
		fmt.Println("  " + line)
	}

	fmt.Println("\nStatistics over 2, 4, 4, 4, 5, 5, 7, 9:")
	for _, op := range []string{"mean", "median", "mode", "stdev", "variance"} {
		fmt.Printf("  %-8s %s\n", op, session.Eval(op+"(2, 4, 4, 4, 5, 5, 7, 9)"))
	}

	fmt.Println("\nFactorials:")
	for _, n := range []int{0, 1, 5, 10, 20} {
		v, err := calc.Factorial(n)
		if err != nil {
			fmt.Printf("  %2d! error: %v\n", n, err)
			continue
		}
		fmt.Printf("  %2d! = %d\n", n, v)
	}

	fmt.Println("\nMemoized Fibonacci:")
	cache := calc.NewCache[int, int64]()
	fib := calc.Memoize(cache, func(n int) int64 {
		v, _ := calc.Fibonacci(n)
		return v
	})
	for _, n := range []int{10, 20, 50, 50, 10} {
		fmt.Printf("  fib(%d) = %d\n", n, fib(n))
	}
	fmt.Printf("  cache holds %d entries after 5 lookups\n", cache.Len())

	fmt.Println("\nPrimes up to 30:")
	primes := make([]string, 0, 10)
	for n := 2; n <= 30; n++ {
		if calc.IsPrime(n) {
			primes = append(primes, fmt.Sprintf("%d", n))
		}
	}
	fmt.Println("  " + strings.Join(primes, " "))

	fmt.Printf("\nPrime factors of 360: %v\n", calc.PrimeFactors(360))
	fmt.Printf("GCD(48, 18) = %d, LCM(48, 18) = %d\n", calc.GCD(48, 18), calc.LCM(48, 18))

	fmt.Println("\nMultiplication table:")
	for i := 1; i <= 5; i++ {
		row := make([]string, 0, 5)
		for j := 1; j <= 5; j++ {
			row = append(row, fmt.Sprintf("%3d", i*j))
		}
		fmt.Println("  " + strings.Join(row, " "))
	}

	fmt.Println("\nMemory register:")
	fmt.Println("  " + session.Eval("m+ 100"))
	fmt.Println("  " + session.Eval("m- 58"))
	fmt.Println("  " + session.Eval("mr"))
	session.Eval("mc")

	fmt.Println("\nBatch with a failure in the middle:")
	for _, line := range session.EvalBatch([]string{"10 / 4", "sqrt(-1)", "2 ** 10"}) {
		fmt.Println("  " + line)
	}
}
