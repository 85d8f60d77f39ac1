package gota

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/pattern"
)

// WithCandleSettings replaces the thresholds used by pattern recognition.
func WithCandleSettings(s CandleSettings) Option {
	return func(e *Engine) error {
		if err := s.Validate(); err != nil {
			return err
		}
		e.candles = pattern.Recognizer{Settings: s}
		return nil
	}
}

// CDL runs one candlestick recogniser with its default penetration. Signals
// are +100 bullish, -100 bearish, ±200 for a confirmed Hikkake, 0 otherwise.
func (e *Engine) CDL(p Pattern, open, high, low, close []float64) (IntResult, error) {
	return call(e, patternOp(p), func(config.Settings) (IntResult, error) {
		return e.candles.Detect(p, open, high, low, close)
	})
}

// CDLPenetration runs a recogniser that takes a penetration parameter.
func (e *Engine) CDLPenetration(p Pattern, penetration float64, open, high, low, close []float64) (IntResult, error) {
	return call(e, patternOp(p), func(config.Settings) (IntResult, error) {
		return e.candles.DetectPenetration(p, penetration, open, high, low, close)
	})
}

// unknownPatternOp labels calls with an unregistered pattern id so that the
// op label set stays bounded.
const unknownPatternOp = "CDL_UNKNOWN"

func patternOp(p Pattern) string {
	if _, ok := pattern.Lookup(p); ok {
		return p.String()
	}
	return unknownPatternOp
}

// Candlestick patterns.
const (
	CDLTwoCrows             = pattern.TwoCrows
	CDLThreeBlackCrows      = pattern.ThreeBlackCrows
	CDLThreeInside          = pattern.ThreeInside
	CDLThreeLineStrike      = pattern.ThreeLineStrike
	CDLThreeOutside         = pattern.ThreeOutside
	CDLThreeStarsInSouth    = pattern.ThreeStarsInSouth
	CDLThreeWhiteSoldiers   = pattern.ThreeWhiteSoldiers
	CDLAbandonedBaby        = pattern.AbandonedBaby
	CDLAdvanceBlock         = pattern.AdvanceBlock
	CDLBeltHold             = pattern.BeltHold
	CDLBreakaway            = pattern.Breakaway
	CDLClosingMarubozu      = pattern.ClosingMarubozu
	CDLConcealBabySwallow   = pattern.ConcealBabySwallow
	CDLCounterAttack        = pattern.CounterAttack
	CDLDarkCloudCover       = pattern.DarkCloudCover
	CDLDoji                 = pattern.Doji
	CDLDojiStar             = pattern.DojiStar
	CDLDragonflyDoji        = pattern.DragonflyDoji
	CDLEngulfing            = pattern.Engulfing
	CDLEveningDojiStar      = pattern.EveningDojiStar
	CDLEveningStar          = pattern.EveningStar
	CDLGapSideSideWhite     = pattern.GapSideSideWhite
	CDLGravestoneDoji       = pattern.GravestoneDoji
	CDLHammer               = pattern.Hammer
	CDLHangingMan           = pattern.HangingMan
	CDLHarami               = pattern.Harami
	CDLHaramiCross          = pattern.HaramiCross
	CDLHighWave             = pattern.HighWave
	CDLHikkake              = pattern.Hikkake
	CDLHikkakeMod           = pattern.HikkakeMod
	CDLHomingPigeon         = pattern.HomingPigeon
	CDLIdenticalThreeCrows  = pattern.IdenticalThreeCrows
	CDLInNeck               = pattern.InNeck
	CDLInvertedHammer       = pattern.InvertedHammer
	CDLKicking              = pattern.Kicking
	CDLKickingByLength      = pattern.KickingByLength
	CDLLadderBottom         = pattern.LadderBottom
	CDLLongLeggedDoji       = pattern.LongLeggedDoji
	CDLLongLine             = pattern.LongLine
	CDLMarubozu             = pattern.Marubozu
	CDLMatchingLow          = pattern.MatchingLow
	CDLMatHold              = pattern.MatHold
	CDLMorningDojiStar      = pattern.MorningDojiStar
	CDLMorningStar          = pattern.MorningStar
	CDLOnNeck               = pattern.OnNeck
	CDLPiercing             = pattern.Piercing
	CDLRickshawman          = pattern.Rickshawman
	CDLRiseFallThreeMethods = pattern.RiseFallThreeMethods
	CDLSeparatingLines      = pattern.SeparatingLines
	CDLShootingStar         = pattern.ShootingStar
	CDLShortLine            = pattern.ShortLine
	CDLSpinningTop          = pattern.SpinningTop
	CDLStalledPattern       = pattern.StalledPattern
	CDLStickSandwich        = pattern.StickSandwich
	CDLTakuri               = pattern.Takuri
	CDLTasukiGap            = pattern.TasukiGap
	CDLThrusting            = pattern.Thrusting
	CDLTristar              = pattern.Tristar
	CDLUniqueThreeRiver     = pattern.UniqueThreeRiver
	CDLUpsideGapTwoCrows    = pattern.UpsideGapTwoCrows
	CDLXSideGapThreeMethods = pattern.XSideGapThreeMethods
)
