// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package statistics

//go:generate mockgen -source source.go -destination source_mock.go -package statistics

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// Source is a uniform random source yielding values in [0,1).
// Both *math/rand.Rand and *golang.org/x/exp/rand.Rand satisfy it.
type Source interface {
	Float64() float64
}

// Names of the supported uniform generators.
const (
	DefaultGenerator  = "default"
	MT19937Generator  = "mt19937"
	XoshiroGenerator  = "xoshiro"
	SplitMixGenerator = "splitmix"
)

var generators = map[string]func(seed int64) Source{
	DefaultGenerator: func(seed int64) Source {
		return rand.New(rand.NewSource(seed))
	},
	MT19937Generator: func(seed int64) Source {
		src := prng.NewMT19937()
		src.Seed(uint64(seed))
		return exprand.New(src)
	},
	XoshiroGenerator: func(seed int64) Source {
		return exprand.New(prng.NewXoshiro256plusplus(uint64(seed)))
	},
	SplitMixGenerator: func(seed int64) Source {
		return exprand.New(prng.NewSplitMix64(uint64(seed)))
	},
}

// NewDefaultSource returns a time-seeded math/rand source.
func NewDefaultSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSource creates a seeded uniform source of the given kind.
func NewSource(kind string, seed int64) (Source, error) {
	if kind == "" {
		kind = DefaultGenerator
	}
	create, ok := generators[kind]
	if !ok {
		return nil, fmt.Errorf("unknown random generator %q (available: %v)", kind, Generators())
	}
	return create(seed), nil
}

// Generators lists the names accepted by NewSource.
func Generators() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
