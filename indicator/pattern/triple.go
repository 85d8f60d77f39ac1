package pattern

import "math"

// Three-candle patterns; i-2 is the first candle.
func init() {
	register(&Pattern{ID: TwoCrows, Name: "CDL2CROWS", Signals: bearOnly,
		extra: 2, uses: []Kind{BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.white(i-2) && cd.body(i-2) > cd.avg(BodyLong, i-2) &&
				cd.black(i-1) && cd.bodyGapUp(i-1, i-2) &&
				cd.black(i) && cd.o[i] < cd.o[i-1] && cd.o[i] > cd.c[i-1] &&
				cd.c[i] > cd.o[i-2] && cd.c[i] < cd.c[i-2]
			return sig(ok, -100)
		}})

	register(&Pattern{ID: ThreeInside, Name: "CDL3INSIDE", Signals: bullBear,
		extra: 2, uses: []Kind{BodyShort, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i-2) > cd.avg(BodyLong, i-2) &&
				cd.body(i-1) <= cd.avg(BodyShort, i-1) &&
				cd.top(i-1) < cd.top(i-2) && cd.bottom(i-1) > cd.bottom(i-2) &&
				(cd.white(i-2) && cd.black(i) && cd.c[i] < cd.o[i-2] ||
					cd.black(i-2) && cd.white(i) && cd.c[i] > cd.o[i-2])
			return sig(ok, -100*cd.color(i-2))
		}})

	register(&Pattern{ID: ThreeOutside, Name: "CDL3OUTSIDE", Signals: bullBear,
		extra: 3,
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.white(i-1) && cd.black(i-2) && cd.c[i-1] > cd.o[i-2] && cd.o[i-1] < cd.c[i-2] && cd.c[i] > cd.c[i-1] ||
				cd.black(i-1) && cd.white(i-2) && cd.o[i-1] > cd.c[i-2] && cd.c[i-1] < cd.o[i-2] && cd.c[i] < cd.c[i-1]
			return sig(ok, 100*cd.color(i-1))
		}})

	register(&Pattern{ID: ThreeStarsInSouth, Name: "CDL3STARSINSOUTH", Signals: bullOnly,
		extra: 2, uses: []Kind{ShadowVeryShort, ShadowLong, BodyLong, BodyShort},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.black(i-2) && cd.black(i-1) && cd.black(i) &&
				cd.body(i-2) > cd.avg(BodyLong, i-2) &&
				cd.lower(i-2) > cd.avg(ShadowLong, i-2) &&
				cd.body(i-1) < cd.body(i-2) &&
				cd.o[i-1] > cd.c[i-2] && cd.o[i-1] <= cd.h[i-2] &&
				cd.l[i-1] < cd.c[i-2] && cd.l[i-1] >= cd.l[i-2] &&
				cd.lower(i-1) > cd.avg(ShadowVeryShort, i-1) &&
				cd.body(i) < cd.avg(BodyShort, i) &&
				cd.lower(i) < cd.avg(ShadowVeryShort, i) &&
				cd.upper(i) < cd.avg(ShadowVeryShort, i) &&
				cd.l[i] > cd.l[i-1] && cd.h[i] < cd.h[i-1]
			return sig(ok, 100)
		}})

	register(&Pattern{ID: ThreeWhiteSoldiers, Name: "CDL3WHITESOLDIERS", Signals: bullOnly,
		extra: 2, uses: []Kind{ShadowVeryShort, BodyShort, Far, Near},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.white(i-2) && cd.upper(i-2) < cd.avg(ShadowVeryShort, i-2) &&
				cd.white(i-1) && cd.upper(i-1) < cd.avg(ShadowVeryShort, i-1) &&
				cd.white(i) && cd.upper(i) < cd.avg(ShadowVeryShort, i) &&
				cd.c[i] > cd.c[i-1] && cd.c[i-1] > cd.c[i-2] &&
				cd.o[i-1] > cd.o[i-2] && cd.o[i-1] <= cd.c[i-2]+cd.avg(Near, i-2) &&
				cd.o[i] > cd.o[i-1] && cd.o[i] <= cd.c[i-1]+cd.avg(Near, i-1) &&
				cd.body(i-1) > cd.body(i-2)-cd.avg(Far, i-2) &&
				cd.body(i) > cd.body(i-1)-cd.avg(Far, i-1) &&
				cd.body(i) > cd.avg(BodyShort, i)
			return sig(ok, 100)
		}})

	register(&Pattern{ID: AbandonedBaby, Name: "CDLABANDONEDBABY", Signals: bullBear,
		Penetration: defaultStarPenetration, extra: 2, uses: []Kind{BodyDoji, BodyLong, BodyShort},
		detect: func(cd *candles, i int, pen float64) int {
			ok := cd.body(i-2) > cd.avg(BodyLong, i-2) &&
				cd.body(i-1) <= cd.avg(BodyDoji, i-1) &&
				cd.body(i) > cd.avg(BodyShort, i) &&
				(cd.white(i-2) && cd.black(i) && cd.c[i] < cd.c[i-2]-cd.body(i-2)*pen &&
					cd.gapUp(i-1, i-2) && cd.gapDown(i, i-1) ||
					cd.black(i-2) && cd.white(i) && cd.c[i] > cd.c[i-2]+cd.body(i-2)*pen &&
						cd.gapDown(i-1, i-2) && cd.gapUp(i, i-1))
			return sig(ok, 100*cd.color(i))
		}})

	register(&Pattern{ID: AdvanceBlock, Name: "CDLADVANCEBLOCK", Signals: bearOnly,
		extra: 2, uses: []Kind{ShadowLong, ShadowShort, Far, Near, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			if !(cd.white(i-2) && cd.white(i-1) && cd.white(i) &&
				cd.c[i] > cd.c[i-1] && cd.c[i-1] > cd.c[i-2] &&
				cd.o[i-1] > cd.o[i-2] && cd.o[i-1] <= cd.c[i-2]+cd.avg(Near, i-2) &&
				cd.o[i] > cd.o[i-1] && cd.o[i] <= cd.c[i-1]+cd.avg(Near, i-1) &&
				cd.body(i-2) > cd.avg(BodyLong, i-2) &&
				cd.upper(i-2) < cd.avg(ShadowShort, i-2)) {
				return 0
			}
			b0, b1, b2 := cd.body(i), cd.body(i-1), cd.body(i-2)
			weakening := b1 < b2-cd.avg(Far, i-2) && b0 < b1+cd.avg(Near, i-1) ||
				b0 < b1-cd.avg(Far, i-1) ||
				b0 < b1 && b1 < b2 &&
					(cd.upper(i) > cd.avg(ShadowShort, i) || cd.upper(i-1) > cd.avg(ShadowShort, i-1)) ||
				b0 < b1 && cd.upper(i) > cd.avg(ShadowLong, i)
			return sig(weakening, -100)
		}})

	register(&Pattern{ID: EveningDojiStar, Name: "CDLEVENINGDOJISTAR", Signals: bearOnly,
		Penetration: defaultStarPenetration, extra: 2, uses: []Kind{BodyDoji, BodyLong, BodyShort},
		detect: func(cd *candles, i int, pen float64) int {
			ok := cd.white(i-2) && cd.body(i-2) > cd.avg(BodyLong, i-2) &&
				cd.body(i-1) <= cd.avg(BodyDoji, i-1) && cd.bodyGapUp(i-1, i-2) &&
				cd.black(i) && cd.body(i) > cd.avg(BodyShort, i) &&
				cd.c[i] < cd.c[i-2]-cd.body(i-2)*pen
			return sig(ok, -100)
		}})

	register(&Pattern{ID: EveningStar, Name: "CDLEVENINGSTAR", Signals: bearOnly,
		Penetration: defaultStarPenetration, extra: 2, uses: []Kind{BodyShort, BodyLong},
		detect: func(cd *candles, i int, pen float64) int {
			ok := cd.white(i-2) && cd.body(i-2) > cd.avg(BodyLong, i-2) &&
				cd.body(i-1) <= cd.avg(BodyShort, i-1) && cd.bodyGapUp(i-1, i-2) &&
				cd.black(i) && cd.body(i) > cd.avg(BodyShort, i) &&
				cd.c[i] < cd.c[i-2]-cd.body(i-2)*pen
			return sig(ok, -100)
		}})

	register(&Pattern{ID: GapSideSideWhite, Name: "CDLGAPSIDESIDEWHITE", Signals: bullBear,
		extra: 2, uses: []Kind{Near, Equal},
		detect: func(cd *candles, i int, _ float64) int {
			up := cd.bodyGapUp(i-1, i-2) && cd.bodyGapUp(i, i-2)
			down := cd.bodyGapDown(i-1, i-2) && cd.bodyGapDown(i, i-2)
			ok := (up || down) &&
				cd.white(i-1) && cd.white(i) &&
				within(cd.body(i), cd.body(i-1), cd.avg(Near, i-1)) &&
				within(cd.o[i], cd.o[i-1], cd.avg(Equal, i-1))
			if !ok {
				return 0
			}
			if cd.bodyGapUp(i-1, i-2) {
				return 100
			}
			return -100
		}})

	register(&Pattern{ID: IdenticalThreeCrows, Name: "CDLIDENTICAL3CROWS", Signals: bearOnly,
		extra: 2, uses: []Kind{ShadowVeryShort, Equal},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.black(i-2) && cd.lower(i-2) < cd.avg(ShadowVeryShort, i-2) &&
				cd.black(i-1) && cd.lower(i-1) < cd.avg(ShadowVeryShort, i-1) &&
				cd.black(i) && cd.lower(i) < cd.avg(ShadowVeryShort, i) &&
				cd.c[i-2] > cd.c[i-1] && cd.c[i-1] > cd.c[i] &&
				within(cd.o[i-1], cd.c[i-2], cd.avg(Equal, i-2)) &&
				within(cd.o[i], cd.c[i-1], cd.avg(Equal, i-1))
			return sig(ok, -100)
		}})

	register(&Pattern{ID: MorningDojiStar, Name: "CDLMORNINGDOJISTAR", Signals: bullOnly,
		Penetration: defaultStarPenetration, extra: 2, uses: []Kind{BodyDoji, BodyLong, BodyShort},
		detect: func(cd *candles, i int, pen float64) int {
			ok := cd.black(i-2) && cd.body(i-2) > cd.avg(BodyLong, i-2) &&
				cd.body(i-1) <= cd.avg(BodyDoji, i-1) && cd.bodyGapDown(i-1, i-2) &&
				cd.white(i) && cd.body(i) > cd.avg(BodyShort, i) &&
				cd.c[i] > cd.c[i-2]+cd.body(i-2)*pen
			return sig(ok, 100)
		}})

	register(&Pattern{ID: MorningStar, Name: "CDLMORNINGSTAR", Signals: bullOnly,
		Penetration: defaultStarPenetration, extra: 2, uses: []Kind{BodyShort, BodyLong},
		detect: func(cd *candles, i int, pen float64) int {
			ok := cd.black(i-2) && cd.body(i-2) > cd.avg(BodyLong, i-2) &&
				cd.body(i-1) <= cd.avg(BodyShort, i-1) && cd.bodyGapDown(i-1, i-2) &&
				cd.white(i) && cd.body(i) > cd.avg(BodyShort, i) &&
				cd.c[i] > cd.c[i-2]+cd.body(i-2)*pen
			return sig(ok, 100)
		}})

	register(&Pattern{ID: StalledPattern, Name: "CDLSTALLEDPATTERN", Signals: bearOnly,
		extra: 2, uses: []Kind{BodyLong, BodyShort, ShadowVeryShort, Near},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.white(i-2) && cd.white(i-1) && cd.white(i) &&
				cd.c[i] > cd.c[i-1] && cd.c[i-1] > cd.c[i-2] &&
				cd.body(i-2) > cd.avg(BodyLong, i-2) &&
				cd.body(i-1) > cd.avg(BodyLong, i-1) &&
				cd.upper(i-1) < cd.avg(ShadowVeryShort, i-1) &&
				cd.o[i-1] > cd.o[i-2] && cd.o[i-1] <= cd.c[i-2]+cd.avg(Near, i-2) &&
				cd.body(i) < cd.avg(BodyShort, i) &&
				cd.o[i] >= cd.c[i-1]-cd.body(i)-cd.avg(Near, i-1)
			return sig(ok, -100)
		}})

	register(&Pattern{ID: StickSandwich, Name: "CDLSTICKSANDWICH", Signals: bullOnly,
		extra: 2, uses: []Kind{Equal},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.black(i-2) && cd.white(i-1) && cd.black(i) &&
				cd.l[i-1] > cd.c[i-2] &&
				within(cd.c[i], cd.c[i-2], cd.avg(Equal, i-2))
			return sig(ok, 100)
		}})

	register(&Pattern{ID: TasukiGap, Name: "CDLTASUKIGAP", Signals: bullBear,
		extra: 2, uses: []Kind{Near},
		detect: func(cd *candles, i int, _ float64) int {
			near := cd.avg(Near, i-1)
			similar := math.Abs(cd.body(i-1)-cd.body(i)) < near
			ok := cd.bodyGapUp(i-1, i-2) && cd.white(i-1) && cd.black(i) &&
				cd.o[i] < cd.c[i-1] && cd.o[i] > cd.o[i-1] &&
				cd.c[i] < cd.o[i-1] && cd.c[i] > cd.top(i-2) && similar ||
				cd.bodyGapDown(i-1, i-2) && cd.black(i-1) && cd.white(i) &&
					cd.o[i] < cd.o[i-1] && cd.o[i] > cd.c[i-1] &&
					cd.c[i] > cd.o[i-1] && cd.c[i] < cd.bottom(i-2) && similar
			return sig(ok, 100*cd.color(i-1))
		}})

	// Tristar measures all three dojis against the first candle's average.
	register(&Pattern{ID: Tristar, Name: "CDLTRISTAR", Signals: bullBear,
		extra: 2, uses: []Kind{BodyDoji},
		detect: func(cd *candles, i int, _ float64) int {
			doji := cd.avg(BodyDoji, i-2)
			if !(cd.body(i-2) <= doji && cd.body(i-1) <= doji && cd.body(i) <= doji) {
				return 0
			}
			switch {
			case cd.bodyGapUp(i-1, i-2) && cd.top(i) < cd.top(i-1):
				return -100
			case cd.bodyGapDown(i-1, i-2) && cd.bottom(i) > cd.bottom(i-1):
				return 100
			}
			return 0
		}})

	register(&Pattern{ID: UniqueThreeRiver, Name: "CDLUNIQUE3RIVER", Signals: bullOnly,
		extra: 2, uses: []Kind{BodyShort, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.black(i-2) && cd.body(i-2) > cd.avg(BodyLong, i-2) &&
				cd.black(i-1) && cd.c[i-1] > cd.c[i-2] && cd.o[i-1] <= cd.o[i-2] && cd.l[i-1] < cd.l[i-2] &&
				cd.white(i) && cd.body(i) < cd.avg(BodyShort, i) && cd.o[i] > cd.l[i-1]
			return sig(ok, 100)
		}})

	register(&Pattern{ID: UpsideGapTwoCrows, Name: "CDLUPSIDEGAP2CROWS", Signals: bearOnly,
		extra: 2, uses: []Kind{BodyShort, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.white(i-2) && cd.body(i-2) > cd.avg(BodyLong, i-2) &&
				cd.black(i-1) && cd.body(i-1) <= cd.avg(BodyShort, i-1) && cd.bodyGapUp(i-1, i-2) &&
				cd.black(i) && cd.o[i] > cd.o[i-1] && cd.c[i] < cd.c[i-1] && cd.c[i] > cd.c[i-2]
			return sig(ok, -100)
		}})

	register(&Pattern{ID: XSideGapThreeMethods, Name: "CDLXSIDEGAP3METHODS", Signals: bullBear,
		extra: 2,
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.color(i-2) == cd.color(i-1) && cd.color(i-1) == -cd.color(i) &&
				cd.o[i] < cd.top(i-1) && cd.o[i] > cd.bottom(i-1) &&
				cd.c[i] < cd.top(i-2) && cd.c[i] > cd.bottom(i-2) &&
				(cd.white(i-2) && cd.bodyGapUp(i-1, i-2) || cd.black(i-2) && cd.bodyGapDown(i-1, i-2))
			return sig(ok, 100*cd.color(i-2))
		}})
}
