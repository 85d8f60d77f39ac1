package pattern

func within(v, ref, tol float64) bool { return v <= ref+tol && v >= ref-tol }

// marubozu: a long body with both shadows very short.
func (cd *candles) marubozu(i int) bool {
	return cd.body(i) > cd.avg(BodyLong, i) &&
		cd.upper(i) < cd.avg(ShadowVeryShort, i) &&
		cd.lower(i) < cd.avg(ShadowVeryShort, i)
}

func kicking(cd *candles, i int) bool {
	return cd.color(i-1) == -cd.color(i) &&
		cd.marubozu(i-1) && cd.marubozu(i) &&
		(cd.black(i-1) && cd.gapUp(i, i-1) || cd.white(i-1) && cd.gapDown(i, i-1))
}

// Two-candle patterns.
func init() {
	register(&Pattern{ID: CounterAttack, Name: "CDLCOUNTERATTACK", Signals: bullBear,
		extra: 1, uses: []Kind{Equal, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.color(i-1) == -cd.color(i) &&
				cd.body(i-1) > cd.avg(BodyLong, i-1) &&
				cd.body(i) > cd.avg(BodyLong, i) &&
				within(cd.c[i], cd.c[i-1], cd.avg(Equal, i-1))
			return sig(ok, 100*cd.color(i))
		}})

	register(&Pattern{ID: DarkCloudCover, Name: "CDLDARKCLOUDCOVER", Signals: bearOnly,
		Penetration: defaultHoldPenetration, extra: 1, uses: []Kind{BodyLong},
		detect: func(cd *candles, i int, pen float64) int {
			ok := cd.white(i-1) && cd.body(i-1) > cd.avg(BodyLong, i-1) &&
				cd.black(i) && cd.o[i] > cd.h[i-1] &&
				cd.c[i] > cd.o[i-1] && cd.c[i] < cd.c[i-1]-cd.body(i-1)*pen
			return sig(ok, -100)
		}})

	register(&Pattern{ID: DojiStar, Name: "CDLDOJISTAR", Signals: bullBear,
		extra: 1, uses: []Kind{BodyDoji, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i-1) > cd.avg(BodyLong, i-1) &&
				cd.body(i) <= cd.avg(BodyDoji, i) &&
				(cd.white(i-1) && cd.bodyGapUp(i, i-1) || cd.black(i-1) && cd.bodyGapDown(i, i-1))
			return sig(ok, -100*cd.color(i-1))
		}})

	register(&Pattern{ID: Engulfing, Name: "CDLENGULFING", Signals: bullBear,
		extra: 2,
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.white(i) && cd.black(i-1) && cd.c[i] > cd.o[i-1] && cd.o[i] < cd.c[i-1] ||
				cd.black(i) && cd.white(i-1) && cd.o[i] > cd.c[i-1] && cd.c[i] < cd.o[i-1]
			return sig(ok, 100*cd.color(i))
		}})

	register(&Pattern{ID: Hammer, Name: "CDLHAMMER", Signals: bullOnly,
		extra: 1, uses: []Kind{BodyShort, ShadowLong, ShadowVeryShort, Near},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) < cd.avg(BodyShort, i) &&
				cd.lower(i) > cd.avg(ShadowLong, i) &&
				cd.upper(i) < cd.avg(ShadowVeryShort, i) &&
				cd.bottom(i) <= cd.l[i-1]+cd.avg(Near, i-1)
			return sig(ok, 100)
		}})

	register(&Pattern{ID: HangingMan, Name: "CDLHANGINGMAN", Signals: bearOnly,
		extra: 1, uses: []Kind{BodyShort, ShadowLong, ShadowVeryShort, Near},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) < cd.avg(BodyShort, i) &&
				cd.lower(i) > cd.avg(ShadowLong, i) &&
				cd.upper(i) < cd.avg(ShadowVeryShort, i) &&
				cd.bottom(i) >= cd.h[i-1]-cd.avg(Near, i-1)
			return sig(ok, -100)
		}})

	register(&Pattern{ID: Harami, Name: "CDLHARAMI", Signals: bullBear,
		extra: 1, uses: []Kind{BodyShort, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i-1) > cd.avg(BodyLong, i-1) &&
				cd.body(i) <= cd.avg(BodyShort, i) &&
				cd.top(i) < cd.top(i-1) && cd.bottom(i) > cd.bottom(i-1)
			return sig(ok, -100*cd.color(i-1))
		}})

	register(&Pattern{ID: HaramiCross, Name: "CDLHARAMICROSS", Signals: bullBear,
		extra: 1, uses: []Kind{BodyDoji, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i-1) > cd.avg(BodyLong, i-1) &&
				cd.body(i) <= cd.avg(BodyDoji, i) &&
				cd.top(i) < cd.top(i-1) && cd.bottom(i) > cd.bottom(i-1)
			return sig(ok, -100*cd.color(i-1))
		}})

	register(&Pattern{ID: HomingPigeon, Name: "CDLHOMINGPIGEON", Signals: bullOnly,
		extra: 1, uses: []Kind{BodyShort, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.black(i-1) && cd.black(i) &&
				cd.body(i-1) > cd.avg(BodyLong, i-1) &&
				cd.body(i) <= cd.avg(BodyShort, i) &&
				cd.o[i] < cd.o[i-1] && cd.c[i] > cd.c[i-1]
			return sig(ok, 100)
		}})

	register(&Pattern{ID: InNeck, Name: "CDLINNECK", Signals: bearOnly,
		extra: 1, uses: []Kind{Equal, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.black(i-1) && cd.body(i-1) > cd.avg(BodyLong, i-1) &&
				cd.white(i) && cd.o[i] < cd.l[i-1] &&
				cd.c[i] <= cd.c[i-1]+cd.avg(Equal, i-1) && cd.c[i] >= cd.c[i-1]
			return sig(ok, -100)
		}})

	register(&Pattern{ID: InvertedHammer, Name: "CDLINVERTEDHAMMER", Signals: bullOnly,
		extra: 1, uses: []Kind{BodyShort, ShadowLong, ShadowVeryShort},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) < cd.avg(BodyShort, i) &&
				cd.upper(i) > cd.avg(ShadowLong, i) &&
				cd.lower(i) < cd.avg(ShadowVeryShort, i) &&
				cd.bodyGapDown(i, i-1)
			return sig(ok, 100)
		}})

	register(&Pattern{ID: Kicking, Name: "CDLKICKING", Signals: bullBear,
		extra: 1, uses: []Kind{ShadowVeryShort, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			return sig(kicking(cd, i), 100*cd.color(i))
		}})

	register(&Pattern{ID: KickingByLength, Name: "CDLKICKINGBYLENGTH", Signals: bullBear,
		extra: 1, uses: []Kind{ShadowVeryShort, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			if !kicking(cd, i) {
				return 0
			}
			if cd.body(i) > cd.body(i-1) {
				return 100 * cd.color(i)
			}
			return 100 * cd.color(i-1)
		}})

	register(&Pattern{ID: MatchingLow, Name: "CDLMATCHINGLOW", Signals: bullOnly,
		extra: 1, uses: []Kind{Equal},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.black(i-1) && cd.black(i) &&
				within(cd.c[i], cd.c[i-1], cd.avg(Equal, i-1))
			return sig(ok, 100)
		}})

	register(&Pattern{ID: OnNeck, Name: "CDLONNECK", Signals: bearOnly,
		extra: 1, uses: []Kind{Equal, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.black(i-1) && cd.body(i-1) > cd.avg(BodyLong, i-1) &&
				cd.white(i) && cd.o[i] < cd.l[i-1] &&
				within(cd.c[i], cd.l[i-1], cd.avg(Equal, i-1))
			return sig(ok, -100)
		}})

	register(&Pattern{ID: Piercing, Name: "CDLPIERCING", Signals: bullOnly,
		extra: 1, uses: []Kind{BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.black(i-1) && cd.body(i-1) > cd.avg(BodyLong, i-1) &&
				cd.white(i) && cd.body(i) > cd.avg(BodyLong, i) &&
				cd.o[i] < cd.l[i-1] && cd.c[i] < cd.o[i-1] &&
				cd.c[i] > cd.c[i-1]+cd.body(i-1)*0.5
			return sig(ok, 100)
		}})

	register(&Pattern{ID: SeparatingLines, Name: "CDLSEPARATINGLINES", Signals: bullBear,
		extra: 1, uses: []Kind{ShadowVeryShort, BodyLong, Equal},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.color(i-1) == -cd.color(i) &&
				within(cd.o[i], cd.o[i-1], cd.avg(Equal, i-1)) &&
				cd.body(i) > cd.avg(BodyLong, i) &&
				(cd.white(i) && cd.lower(i) < cd.avg(ShadowVeryShort, i) ||
					cd.black(i) && cd.upper(i) < cd.avg(ShadowVeryShort, i))
			return sig(ok, 100*cd.color(i))
		}})

	register(&Pattern{ID: ShootingStar, Name: "CDLSHOOTINGSTAR", Signals: bearOnly,
		extra: 1, uses: []Kind{BodyShort, ShadowLong, ShadowVeryShort},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) < cd.avg(BodyShort, i) &&
				cd.upper(i) > cd.avg(ShadowLong, i) &&
				cd.lower(i) < cd.avg(ShadowVeryShort, i) &&
				cd.bodyGapUp(i, i-1)
			return sig(ok, -100)
		}})

	register(&Pattern{ID: Thrusting, Name: "CDLTHRUSTING", Signals: bearOnly,
		extra: 1, uses: []Kind{Equal, BodyLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.black(i-1) && cd.body(i-1) > cd.avg(BodyLong, i-1) &&
				cd.white(i) && cd.o[i] < cd.l[i-1] &&
				cd.c[i] > cd.c[i-1]+cd.avg(Equal, i-1) &&
				cd.c[i] <= cd.c[i-1]+cd.body(i-1)*0.5
			return sig(ok, -100)
		}})
}
