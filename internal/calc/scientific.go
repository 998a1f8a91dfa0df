package calc

import "fmt"

// Integer helpers behind the factorial and fibonacci operations and the
// demo routines. All of them work in int64 and refuse inputs that would
// overflow it.

const (
	maxFactorial = 20
	maxFibonacci = 92
)

// Factorial returns n! for 0 <= n <= 20.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial of negative number", ErrDomain)
	}
	if n > maxFactorial {
		return 0, fmt.Errorf("%w: factorial input too large, max is %d", ErrDomain, maxFactorial)
	}
	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}
	return result, nil
}

// Fibonacci returns the nth Fibonacci number for 0 <= n <= 92, with
// F(0) = 0 and F(1) = 1.
func Fibonacci(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: fibonacci of negative number", ErrDomain)
	}
	if n > maxFibonacci {
		return 0, fmt.Errorf("%w: fibonacci input too large, max is %d", ErrDomain, maxFibonacci)
	}
	var a, b int64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a, nil
}

// IsPrime reports whether n is prime by trial division.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// PrimeFactors returns the prime factorization of n in ascending order,
// with repeated factors repeated. Inputs below two have no factorization
// and return nil.
func PrimeFactors(n int) []int {
	if n < 2 {
		return nil
	}
	var factors []int
	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}
	for i := 3; i*i <= n; i += 2 {
		for n%i == 0 {
			factors = append(factors, i)
			n /= i
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or zero when either
// is zero.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	result := a / GCD(a, b) * b
	if result < 0 {
		return -result
	}
	return result
}
