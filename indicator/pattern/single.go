package pattern

// One-candle shapes. Each compares the signal bar with thresholds averaged
// over the bars before it.
func init() {
	register(&Pattern{ID: BeltHold, Name: "CDLBELTHOLD", Signals: bullBear,
		uses: []Kind{BodyLong, ShadowVeryShort},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) > cd.avg(BodyLong, i) &&
				(cd.white(i) && cd.lower(i) < cd.avg(ShadowVeryShort, i) ||
					cd.black(i) && cd.upper(i) < cd.avg(ShadowVeryShort, i))
			return sig(ok, 100*cd.color(i))
		}})

	register(&Pattern{ID: ClosingMarubozu, Name: "CDLCLOSINGMARUBOZU", Signals: bullBear,
		uses: []Kind{BodyLong, ShadowVeryShort},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) > cd.avg(BodyLong, i) &&
				(cd.white(i) && cd.upper(i) < cd.avg(ShadowVeryShort, i) ||
					cd.black(i) && cd.lower(i) < cd.avg(ShadowVeryShort, i))
			return sig(ok, 100*cd.color(i))
		}})

	register(&Pattern{ID: Doji, Name: "CDLDOJI", Signals: bullOnly,
		uses: []Kind{BodyDoji},
		detect: func(cd *candles, i int, _ float64) int {
			return sig(cd.body(i) <= cd.avg(BodyDoji, i), 100)
		}})

	register(&Pattern{ID: DragonflyDoji, Name: "CDLDRAGONFLYDOJI", Signals: bullOnly,
		uses: []Kind{BodyDoji, ShadowVeryShort},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) <= cd.avg(BodyDoji, i) &&
				cd.upper(i) < cd.avg(ShadowVeryShort, i) &&
				cd.lower(i) > cd.avg(ShadowVeryShort, i)
			return sig(ok, 100)
		}})

	register(&Pattern{ID: GravestoneDoji, Name: "CDLGRAVESTONEDOJI", Signals: bullOnly,
		uses: []Kind{BodyDoji, ShadowVeryShort},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) <= cd.avg(BodyDoji, i) &&
				cd.lower(i) < cd.avg(ShadowVeryShort, i) &&
				cd.upper(i) > cd.avg(ShadowVeryShort, i)
			return sig(ok, 100)
		}})

	register(&Pattern{ID: HighWave, Name: "CDLHIGHWAVE", Signals: bullBear,
		uses: []Kind{BodyShort, ShadowVeryLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) < cd.avg(BodyShort, i) &&
				cd.upper(i) > cd.avg(ShadowVeryLong, i) &&
				cd.lower(i) > cd.avg(ShadowVeryLong, i)
			return sig(ok, 100*cd.color(i))
		}})

	register(&Pattern{ID: LongLeggedDoji, Name: "CDLLONGLEGGEDDOJI", Signals: bullOnly,
		uses: []Kind{BodyDoji, ShadowLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) <= cd.avg(BodyDoji, i) &&
				(cd.lower(i) > cd.avg(ShadowLong, i) || cd.upper(i) > cd.avg(ShadowLong, i))
			return sig(ok, 100)
		}})

	register(&Pattern{ID: LongLine, Name: "CDLLONGLINE", Signals: bullBear,
		uses: []Kind{BodyLong, ShadowShort},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) > cd.avg(BodyLong, i) &&
				cd.upper(i) < cd.avg(ShadowShort, i) &&
				cd.lower(i) < cd.avg(ShadowShort, i)
			return sig(ok, 100*cd.color(i))
		}})

	register(&Pattern{ID: Marubozu, Name: "CDLMARUBOZU", Signals: bullBear,
		uses: []Kind{BodyLong, ShadowVeryShort},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) > cd.avg(BodyLong, i) &&
				cd.upper(i) < cd.avg(ShadowVeryShort, i) &&
				cd.lower(i) < cd.avg(ShadowVeryShort, i)
			return sig(ok, 100*cd.color(i))
		}})

	register(&Pattern{ID: Rickshawman, Name: "CDLRICKSHAWMAN", Signals: bullOnly,
		uses: []Kind{BodyDoji, ShadowLong, Near},
		detect: func(cd *candles, i int, _ float64) int {
			mid := cd.l[i] + cd.hl(i)/2
			near := cd.avg(Near, i)
			ok := cd.body(i) <= cd.avg(BodyDoji, i) &&
				cd.lower(i) > cd.avg(ShadowLong, i) &&
				cd.upper(i) > cd.avg(ShadowLong, i) &&
				cd.bottom(i) <= mid+near && cd.top(i) >= mid-near
			return sig(ok, 100)
		}})

	register(&Pattern{ID: ShortLine, Name: "CDLSHORTLINE", Signals: bullBear,
		uses: []Kind{BodyShort, ShadowShort},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) < cd.avg(BodyShort, i) &&
				cd.upper(i) < cd.avg(ShadowShort, i) &&
				cd.lower(i) < cd.avg(ShadowShort, i)
			return sig(ok, 100*cd.color(i))
		}})

	register(&Pattern{ID: SpinningTop, Name: "CDLSPINNINGTOP", Signals: bullBear,
		uses: []Kind{BodyShort},
		detect: func(cd *candles, i int, _ float64) int {
			b := cd.body(i)
			ok := b < cd.avg(BodyShort, i) && cd.upper(i) > b && cd.lower(i) > b
			return sig(ok, 100*cd.color(i))
		}})

	register(&Pattern{ID: Takuri, Name: "CDLTAKURI", Signals: bullOnly,
		uses: []Kind{BodyDoji, ShadowVeryShort, ShadowVeryLong},
		detect: func(cd *candles, i int, _ float64) int {
			ok := cd.body(i) <= cd.avg(BodyDoji, i) &&
				cd.upper(i) < cd.avg(ShadowVeryShort, i) &&
				cd.lower(i) > cd.avg(ShadowVeryLong, i)
			return sig(ok, 100)
		}})
}
