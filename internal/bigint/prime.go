package bigint

import "fmt"

// smallPrimes are used for trial division before Miller-Rabin. Every
// composite below smallPrimeLimit has a factor in this list.
var smallPrimes = []word{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

const smallPrimeLimit = 101 * 101

// Oracle answers primality questions. It owns the Random it draws witnesses
// and candidates from, so independent Oracles never share hidden state.
//
// An Oracle is safe for concurrent use only if its Random is; see Locked.
type Oracle struct {
	rnd Random
}

// OracleOption configures an Oracle.
type OracleOption func(*Oracle)

// WithRandom sets the entropy source.
func WithRandom(r Random) OracleOption {
	return func(o *Oracle) { o.rnd = r }
}

// WithSeed uses a deterministic ChaCha8 source seeded with seed.
func WithSeed(seed uint64) OracleOption {
	return func(o *Oracle) { o.rnd = NewSeededRandom(seed) }
}

// NewOracle returns an Oracle. Without options it uses NewRandom.
func NewOracle(opts ...OracleOption) *Oracle {
	o := &Oracle{}
	for _, opt := range opts {
		opt(o)
	}
	if o.rnd == nil {
		o.rnd = NewRandom()
	}
	return o
}

// Random returns the oracle's entropy source.
func (o *Oracle) Random() Random { return o.rnd }

// RandomBits returns a uniformly distributed value in [0, 2^bitLength).
func (o *Oracle) RandomBits(bitLength int) (Int, error) {
	if bitLength < 0 {
		return Int{}, domainError("negative bit length %d", bitLength)
	}
	if bitLength == 0 {
		return Int{}, nil
	}
	buf := make([]byte, (bitLength+7)/8)
	o.rnd.Fill(buf)
	if r := bitLength % 8; r != 0 {
		buf[0] &= byte(1)<<r - 1
	}
	return makeInt(false, natFromBytes(buf)), nil
}

// RandomBelow returns a uniformly distributed value in [0, n) by rejection
// sampling. It returns ErrDomain for n <= 0.
func (o *Oracle) RandomBelow(n Int) (Int, error) {
	if n.sign <= 0 {
		return Int{}, domainError("bound %s is not positive", n)
	}
	if n.IsInt64() && n.Int64() <= int64(maxInt) {
		return NewInt(int64(o.rnd.IntN(int(n.Int64())))), nil
	}
	bitLength := n.BitLen()
	for {
		c, err := o.RandomBits(bitLength)
		if err != nil {
			return Int{}, err
		}
		if c.Cmp(n) < 0 {
			return c, nil
		}
	}
}

// IsProbablePrime reports whether n is probably prime after certainty
// rounds of Miller-Rabin with random witnesses. Primes always pass; a
// composite passes with probability at most 4^-certainty. certainty below 1
// is treated as 1.
func (o *Oracle) IsProbablePrime(n Int, certainty int) bool {
	if n.sign <= 0 || n.BitLen() < 2 {
		return false
	}
	if !n.IsOdd() {
		return n.mag.cmp(nat{2}) == 0
	}
	for _, p := range smallPrimes {
		if len(n.mag) == 1 && n.mag[0] == p {
			return true
		}
		if _, r := n.mag.divWord(p); r == 0 {
			return false
		}
	}
	if len(n.mag) == 1 && n.mag[0] < smallPrimeLimit {
		return true
	}
	return o.millerRabin(n, max(certainty, 1))
}

// millerRabin runs the strong probable-prime test on an odd n > 3.
//
// With n-1 = d*2^s and d odd, a witness a proves n composite unless
// a^d ≡ 1 or a^(d*2^j) ≡ n-1 for some 0 <= j < s.
func (o *Oracle) millerRabin(n Int, rounds int) bool {
	one := One()
	nm1 := n.Sub(one)
	s := nm1.mag.trailingZeroBits()
	d := nm1.Shr(uint(s))

	for range rounds {
		a := o.witness(n)
		x := a.modPow(d, n)
		if x.Equal(one) || x.Equal(nm1) {
			continue
		}
		composite := true
		for j := 1; j < s; j++ {
			x = x.Mul(x).mod(n)
			if x.Equal(nm1) {
				composite = false
				break
			}
			if x.Equal(one) {
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// witness draws a base in [2, n-2]. Bounds that fit in an int go through
// Random.IntN; larger ones are sampled from raw bytes.
func (o *Oracle) witness(n Int) Int {
	span := n.Sub(NewInt(3))
	if span.IsInt64() && span.Int64() <= int64(maxInt) {
		return NewInt(int64(o.rnd.IntN(int(span.Int64())) + 2))
	}
	a, _ := o.RandomBelow(span)
	return a.Add(NewInt(2))
}

const maxInt = int(^uint(0) >> 1)

// NextProbablePrime returns the first probable prime greater than n,
// testing at most searchBound candidates. It returns ErrSearchExhausted if
// none of them passes and ErrDomain for a searchBound below 1.
func (o *Oracle) NextProbablePrime(n Int, certainty, searchBound int) (Int, error) {
	if searchBound < 1 {
		return Int{}, domainError("search bound %d is not positive", searchBound)
	}
	if n.Cmp(NewInt(2)) < 0 {
		return NewInt(2), nil
	}
	c := n
	for range searchBound {
		c = c.Add(One())
		if o.IsProbablePrime(c, certainty) {
			return c, nil
		}
	}
	return Int{}, fmt.Errorf("%w: no probable prime in (%s, %s]", ErrSearchExhausted, n, c)
}

// ProbablePrime draws random odd bitLength-bit values with the top bit set
// until one passes IsProbablePrime. It returns ErrGenerationExhausted after
// attempts failures and ErrDomain for bitLength < 2 or attempts < 1.
func (o *Oracle) ProbablePrime(bitLength, certainty, attempts int) (Int, error) {
	if bitLength < 2 {
		return Int{}, domainError("bit length %d is below 2", bitLength)
	}
	if attempts < 1 {
		return Int{}, domainError("attempts %d is not positive", attempts)
	}
	for range attempts {
		c, err := o.RandomBits(bitLength)
		if err != nil {
			return Int{}, err
		}
		c = c.SetBit(uint(bitLength - 1)).SetBit(0)
		if o.IsProbablePrime(c, certainty) {
			return c, nil
		}
	}
	return Int{}, fmt.Errorf("%w: %d attempts at %d bits", ErrGenerationExhausted, attempts, bitLength)
}

// ProbablyPrime reports whether x passes certainty rounds of Miller-Rabin
// using a freshly seeded Oracle.
func (x Int) ProbablyPrime(certainty int) bool {
	return NewOracle().IsProbablePrime(x, certainty)
}
