package split

import (
	"math"
	"math/rand"
	"sort"

	"gowrangle/domain/core"
)

// stratifiedShuffleSplit divides positions into train and test so each
// label keeps its share. The test side gets ceil(testRatio * n) rows.
// labels is indexed by position.
func stratifiedShuffleSplit(positions []int, labels []string, testRatio float64, rng *rand.Rand) (train, test []int, err error) {
	n := len(positions)
	nTest := int(math.Ceil(testRatio * float64(n)))
	nTrain := n - nTest
	if nTest <= 0 || nTrain <= 0 {
		return nil, nil, core.NewStratumError("%d rows with test ratio %g leaves an empty subset", n, testRatio)
	}

	strata := make(map[string][]int)
	for _, pos := range positions {
		strata[labels[pos]] = append(strata[labels[pos]], pos)
	}

	classes := make([]string, 0, len(strata))
	for label := range strata {
		classes = append(classes, label)
	}
	sort.Strings(classes)

	counts := make([]int, len(classes))
	for i, label := range classes {
		counts[i] = len(strata[label])
		if counts[i] < 2 {
			return nil, nil, core.NewStratumError("category %q has only %d member", label, counts[i])
		}
	}
	if nTest < len(classes) {
		return nil, nil, core.NewStratumError("test size %d is smaller than the %d categories", nTest, len(classes))
	}
	if nTrain < len(classes) {
		return nil, nil, core.NewStratumError("train size %d is smaller than the %d categories", nTrain, len(classes))
	}

	testPer := approximateMode(counts, nTest, rng)
	left := make([]int, len(counts))
	for i := range counts {
		left[i] = counts[i] - testPer[i]
	}
	trainPer := approximateMode(left, nTrain, rng)

	for i, label := range classes {
		stratum := strata[label]
		perm := rng.Perm(len(stratum))
		for _, p := range perm[:trainPer[i]] {
			train = append(train, stratum[p])
		}
		for _, p := range perm[trainPer[i] : trainPer[i]+testPer[i]] {
			test = append(test, stratum[p])
		}
	}

	rng.Shuffle(len(train), func(i, j int) { train[i], train[j] = train[j], train[i] })
	rng.Shuffle(len(test), func(i, j int) { test[i], test[j] = test[j], test[i] })
	return train, test, nil
}

// approximateMode allocates draws across classes proportionally to counts.
// Each class gets the floor of its share; leftover draws go to the classes
// with the largest fractional remainder, ties broken in random order.
func approximateMode(counts []int, draws int, rng *rand.Rand) []int {
	total := 0
	for _, c := range counts {
		total += c
	}

	alloc := make([]int, len(counts))
	remainder := make([]float64, len(counts))
	assigned := 0
	for i, c := range counts {
		share := float64(c) * float64(draws) / float64(total)
		alloc[i] = int(math.Floor(share))
		remainder[i] = share - float64(alloc[i])
		assigned += alloc[i]
	}

	need := draws - assigned
	if need <= 0 {
		return alloc
	}

	distinct := make([]float64, 0, len(remainder))
	seen := make(map[float64]bool)
	for _, r := range remainder {
		if !seen[r] {
			seen[r] = true
			distinct = append(distinct, r)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	for _, value := range distinct {
		var tied []int
		for i, r := range remainder {
			if r == value {
				tied = append(tied, i)
			}
		}
		rng.Shuffle(len(tied), func(i, j int) { tied[i], tied[j] = tied[j], tied[i] })
		if len(tied) > need {
			tied = tied[:need]
		}
		for _, i := range tied {
			alloc[i]++
		}
		need -= len(tied)
		if need == 0 {
			break
		}
	}
	return alloc
}
