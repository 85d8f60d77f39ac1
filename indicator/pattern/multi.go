package pattern

import "math"

// Patterns spanning four or more candles, and the stateful Hikkake pair.
func init() {
	register(&Pattern{ID: ThreeBlackCrows, Name: "CDL3BLACKCROWS", Signals: bearOnly,
		extra: 3, uses: []Kind{ShadowVeryShort},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.white(i-3) &&
				cd.black(i-2) && cd.lower(i-2) < cd.avg(ShadowVeryShort, i-2) &&
				cd.black(i-1) && cd.lower(i-1) < cd.avg(ShadowVeryShort, i-1) &&
				cd.black(i) && cd.lower(i) < cd.avg(ShadowVeryShort, i) &&
				cd.o[i-1] < cd.o[i-2] && cd.o[i-1] > cd.c[i-2] &&
				cd.o[i] < cd.o[i-1] && cd.o[i] > cd.c[i-1] &&
				cd.h[i-3] > cd.c[i-2] && cd.c[i-2] > cd.c[i-1] && cd.c[i-1] > cd.c[i]
			return sig(ok, -100)
		}})

	register(&Pattern{ID: ThreeLineStrike, Name: "CDL3LINESTRIKE", Signals: bullBear,
		extra: 3, uses: []Kind{Near},
		detect: func(cd *candles, i int, _ float64) int {
			n3, n2 := cd.avg(Near, i-3), cd.avg(Near, i-2)
			ok := cd.color(i-3) == cd.color(i-2) && cd.color(i-2) == cd.color(i-1) &&
				cd.color(i) == -cd.color(i-1) &&
				cd.o[i-2] >= cd.bottom(i-3)-n3 && cd.o[i-2] <= cd.top(i-3)+n3 &&
				cd.o[i-1] >= cd.bottom(i-2)-n2 && cd.o[i-1] <= cd.top(i-2)+n2 &&
				(cd.white(i-1) && cd.c[i-1] > cd.c[i-2] && cd.c[i-2] > cd.c[i-3] &&
					cd.o[i] > cd.c[i-1] && cd.c[i] < cd.o[i-3] ||
					cd.black(i-1) && cd.c[i-1] < cd.c[i-2] && cd.c[i-2] < cd.c[i-3] &&
						cd.o[i] < cd.c[i-1] && cd.c[i] > cd.o[i-3])
			return sig(ok, 100*cd.color(i-1))
		}})

	register(&Pattern{ID: Breakaway, Name: "CDLBREAKAWAY", Signals: bullBear,
		extra: 4, uses: []Kind{BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i-4) > cd.avg(BodyLong, i-4) &&
				cd.color(i-4) == cd.color(i-3) && cd.color(i-3) == cd.color(i-1) &&
				cd.color(i-1) == -cd.color(i) &&
				(cd.black(i-4) && cd.bodyGapDown(i-3, i-4) &&
					cd.h[i-2] < cd.h[i-3] && cd.l[i-2] < cd.l[i-3] &&
					cd.h[i-1] < cd.h[i-2] && cd.l[i-1] < cd.l[i-2] &&
					cd.c[i] > cd.o[i-3] && cd.c[i] < cd.c[i-4] ||
					cd.white(i-4) && cd.bodyGapUp(i-3, i-4) &&
						cd.h[i-2] > cd.h[i-3] && cd.l[i-2] > cd.l[i-3] &&
						cd.h[i-1] > cd.h[i-2] && cd.l[i-1] > cd.l[i-2] &&
						cd.c[i] < cd.o[i-3] && cd.c[i] > cd.c[i-4])
			return sig(ok, 100*cd.color(i))
		}})

	register(&Pattern{ID: ConcealBabySwallow, Name: "CDLCONCEALBABYSWALL", Signals: bullOnly,
		extra: 3, uses: []Kind{ShadowVeryShort},
		detect: func(cd *candles, i int, _ float64) int {
			shaved := func(k int) bool {
				return cd.lower(k) < cd.avg(ShadowVeryShort, k) && cd.upper(k) < cd.avg(ShadowVeryShort, k)
			}
			ok := cd.black(i-3) && cd.black(i-2) && cd.black(i-1) && cd.black(i) &&
				shaved(i-3) && shaved(i-2) &&
				cd.bodyGapDown(i-1, i-2) &&
				cd.upper(i-1) > cd.avg(ShadowVeryShort, i-1) &&
				cd.h[i-1] > cd.c[i-2] &&
				cd.h[i] > cd.h[i-1] && cd.l[i] < cd.l[i-1]
			return sig(ok, 100)
		}})

	register(&Pattern{ID: LadderBottom, Name: "CDLLADDERBOTTOM", Signals: bullOnly,
		extra: 4, uses: []Kind{ShadowVeryShort},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.black(i-4) && cd.black(i-3) && cd.black(i-2) &&
				cd.o[i-4] > cd.o[i-3] && cd.o[i-3] > cd.o[i-2] &&
				cd.c[i-4] > cd.c[i-3] && cd.c[i-3] > cd.c[i-2] &&
				cd.black(i-1) && cd.upper(i-1) > cd.avg(ShadowVeryShort, i-1) &&
				cd.white(i) && cd.o[i] > cd.o[i-1] && cd.c[i] > cd.h[i-1]
			return sig(ok, 100)
		}})

	register(&Pattern{ID: MatHold, Name: "CDLMATHOLD", Signals: bullOnly,
		Penetration: defaultHoldPenetration, extra: 4, uses: []Kind{BodyShort, BodyLong},
		detect: func(cd *candles, i int, pen float64) int {
			floor := cd.c[i-4] - cd.body(i-4)*pen
			ok := cd.body(i-4) > cd.avg(BodyLong, i-4) &&
				cd.body(i-3) < cd.avg(BodyShort, i-3) &&
				cd.body(i-2) < cd.avg(BodyShort, i-2) &&
				cd.body(i-1) < cd.avg(BodyShort, i-1) &&
				cd.white(i-4) && cd.black(i-3) && cd.white(i) &&
				cd.bodyGapUp(i-3, i-4) &&
				cd.bottom(i-2) < cd.c[i-4] && cd.bottom(i-1) < cd.c[i-4] &&
				cd.bottom(i-2) > floor && cd.bottom(i-1) > floor &&
				cd.top(i-2) < cd.o[i-3] && cd.top(i-1) < cd.top(i-2) &&
				cd.o[i] > cd.c[i-1] &&
				cd.c[i] > math.Max(math.Max(cd.h[i-3], cd.h[i-2]), cd.h[i-1])
			return sig(ok, 100)
		}})

	register(&Pattern{ID: RiseFallThreeMethods, Name: "CDLRISEFALL3METHODS", Signals: bullBear,
		extra: 4, uses: []Kind{BodyShort, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			if !(cd.body(i-4) > cd.avg(BodyLong, i-4) &&
				cd.body(i-3) < cd.avg(BodyShort, i-3) &&
				cd.body(i-2) < cd.avg(BodyShort, i-2) &&
				cd.body(i-1) < cd.avg(BodyShort, i-1) &&
				cd.body(i) > cd.avg(BodyLong, i) &&
				cd.color(i-4) == -cd.color(i-3) && cd.color(i-3) == cd.color(i-2) &&
				cd.color(i-2) == cd.color(i-1) && cd.color(i-1) == -cd.color(i)) {
				return 0
			}
			for k := i - 3; k < i; k++ {
				if !(cd.bottom(k) < cd.h[i-4] && cd.top(k) > cd.l[i-4]) {
					return 0
				}
			}
			dir := float64(cd.color(i - 4))
			ok := cd.c[i-2]*dir < cd.c[i-3]*dir && cd.c[i-1]*dir < cd.c[i-2]*dir &&
				cd.o[i]*dir > cd.c[i-1]*dir &&
				cd.c[i]*dir > cd.c[i-4]*dir
			return sig(ok, 100*cd.color(i-4))
		}})

	register(&Pattern{ID: Hikkake, Name: "CDLHIKKAKE", Signals: confirmed,
		extra: 5,
		scan: func(cd *candles, lb int, out []int) {
			hikkake(cd, lb, out, func(int) bool { return true })
		}})

	register(&Pattern{ID: HikkakeMod, Name: "CDLHIKKAKEMOD", Signals: confirmed,
		extra: 5, uses: []Kind{Near}, minAvg: 1,
		scan: func(cd *candles, lb int, out []int) {
			hikkake(cd, lb, out, func(i int) bool {
				// a second inside bar, and the first inside bar closing
				// near the extreme opposite the breakout
				if !(cd.h[i-2] < cd.h[i-3] && cd.l[i-2] > cd.l[i-3]) {
					return false
				}
				near := cd.avg(Near, i-2)
				if cd.h[i] < cd.h[i-1] {
					return cd.c[i-2] <= cd.l[i-2]+near
				}
				return cd.c[i-2] >= cd.h[i-2]-near
			})
		}})
}

// hikkake marks an inside bar followed by a false breakout (±100), and a
// close beyond the inside bar within three bars as confirmation (±200).
// extra narrows the setup for the modified variant.
func hikkake(cd *candles, lb int, out []int, extra func(i int) bool) {
	patIdx, patRes := 0, 0
	for i := lb - 3; i < len(out); i++ {
		setup := cd.h[i-1] < cd.h[i-2] && cd.l[i-1] > cd.l[i-2] &&
			(cd.h[i] < cd.h[i-1] && cd.l[i] < cd.l[i-1] || cd.h[i] > cd.h[i-1] && cd.l[i] > cd.l[i-1]) &&
			extra(i)
		switch {
		case setup:
			patRes = 100
			if cd.h[i] >= cd.h[i-1] {
				patRes = -100
			}
			patIdx = i
			if i >= lb {
				out[i] = patRes
			}
		case i <= patIdx+3 &&
			(patRes > 0 && cd.c[i] > cd.h[patIdx-1] || patRes < 0 && cd.c[i] < cd.l[patIdx-1]):
			if i >= lb {
				if patRes > 0 {
					out[i] = patRes + 100
				} else {
					out[i] = patRes - 100
				}
			}
			patIdx = 0
		}
	}
}
