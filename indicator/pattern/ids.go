package pattern

// Pattern identifiers, in TA-Lib function order.
const (
	TwoCrows ID = iota + 1
	ThreeBlackCrows
	ThreeInside
	ThreeLineStrike
	ThreeOutside
	ThreeStarsInSouth
	ThreeWhiteSoldiers
	AbandonedBaby
	AdvanceBlock
	BeltHold
	Breakaway
	ClosingMarubozu
	ConcealBabySwallow
	CounterAttack
	DarkCloudCover
	Doji
	DojiStar
	DragonflyDoji
	Engulfing
	EveningDojiStar
	EveningStar
	GapSideSideWhite
	GravestoneDoji
	Hammer
	HangingMan
	Harami
	HaramiCross
	HighWave
	Hikkake
	HikkakeMod
	HomingPigeon
	IdenticalThreeCrows
	InNeck
	InvertedHammer
	Kicking
	KickingByLength
	LadderBottom
	LongLeggedDoji
	LongLine
	Marubozu
	MatchingLow
	MatHold
	MorningDojiStar
	MorningStar
	OnNeck
	Piercing
	Rickshawman
	RiseFallThreeMethods
	SeparatingLines
	ShootingStar
	ShortLine
	SpinningTop
	StalledPattern
	StickSandwich
	Takuri
	TasukiGap
	Thrusting
	Tristar
	UniqueThreeRiver
	UpsideGapTwoCrows
	XSideGapThreeMethods
)

const (
	defaultStarPenetration = 0.3
	defaultHoldPenetration = 0.5
)
