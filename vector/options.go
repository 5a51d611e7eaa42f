package vector

import "github.com/npillmayer/schuko"

// ConfigKeyBits is the configuration key for the degree exponent of vector tries,
// see FromConfiguration.
const ConfigKeyBits = "persistent.vector.bits"

const defaultBits uint = 5 // will produce nodes with degree  2 ^ 5 = 32

type props struct {
	bits   uint // number of bits to use per level
	degree int  // degree is always 2 ^ bits
	mask   int  // mask is degree - 1, i.e. a bit pattern with trailing 1s of length 'bits'
	shift  uint // we do not store h(v), but rather bits*h(v)
}

func makeProps(bits uint) props {
	p := props{bits: bits}
	p.degree = 1 << p.bits
	p.mask = p.degree - 1
	p.shift = p.bits
	return p
}

// init makes the zero value of props usable, i.e. it sets default values.
func (p props) init() props {
	if p.bits == 0 {
		return makeProps(defaultBits)
	}
	return p
}

func (p props) withShift(shift uint) props {
	p.shift = shift
	return p
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

func applyOptions(opts []Option) props {
	var p props
	for _, option := range opts {
		if option.config != nil {
			p = option.config(p)
		}
	}
	return p.init()
}

// DegreeExponent is an option to indirectly set the degree of the underlying trie for a vector.
// The degree of the trie will be 2^exp. Accepted exponents are [1…5]; default is 5, i.e.
// a degree of 32.
//
// Use it like this:
//
//     vec := vector.Immutable[int](DegreeExponent(3))
//
// Small degrees make for deep tries and are mostly useful for testing.
func DegreeExponent(n int) Option {
	conf := func(p props) props {
		if n < 1 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		return makeProps(uint(n))
	}
	return Option{config: conf}
}

// FromConfiguration is an option to read the degree exponent of a vector trie from an
// application configuration, using key ConfigKeyBits. If conf is nil or the key is not
// set, the option leaves the defaults untouched.
func FromConfiguration(conf schuko.Configuration) Option {
	if conf == nil || !conf.IsSet(ConfigKeyBits) {
		return Option{}
	}
	tracer().Debugf("vector degree exponent configured as %d", conf.GetInt(ConfigKeyBits))
	return DegreeExponent(conf.GetInt(ConfigKeyBits))
}
