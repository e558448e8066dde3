package growth

// StageID names one of the six visual growth phases.
type StageID string

const (
	StageSeed   StageID = "seed"
	StageSprout StageID = "sprout"
	StageStem   StageID = "stem"
	StageBud    StageID = "bud"
	StageHalf   StageID = "half"
	StageBloom  StageID = "bloom"
)

type Stage struct {
	Level int     `json:"level"`
	ID    StageID `json:"id"`
	Label string  `json:"label"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
}

var Stages = []Stage{
	{Level: 0, ID: StageSeed, Label: "씨앗", Min: 0, Max: 9},
	{Level: 1, ID: StageSprout, Label: "새싹", Min: 10, Max: 29},
	{Level: 2, ID: StageStem, Label: "줄기", Min: 30, Max: 49},
	{Level: 3, ID: StageBud, Label: "꽃봉오리", Min: 50, Max: 69},
	{Level: 4, ID: StageHalf, Label: "반쯤 핀 꽃", Min: 70, Max: 99},
	{Level: 5, ID: StageBloom, Label: "개화", Min: 100, Max: 100},
}

// StageFor returns the stage for a score. Out-of-range scores are clamped.
func StageFor(score int) Stage {
	p := Clamp(score)
	for i := len(Stages) - 1; i >= 0; i-- {
		if p >= Stages[i].Min {
			return Stages[i]
		}
	}
	return Stages[0]
}

// Progress is what gauge components read: the current stage and the clamped percent.
type Progress struct {
	Score   int   `json:"score"`
	Percent int   `json:"percent"`
	Stage   Stage `json:"stage"`
}

func ProgressFor(score int) Progress {
	p := Clamp(score)
	return Progress{Score: score, Percent: p, Stage: StageFor(p)}
}
