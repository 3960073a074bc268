package config

// AnimationDef describes one sprite-sheet strip: inclusive frame range
// and seconds per frame.
type AnimationDef struct {
	First            int
	Last             int
	FrameDuration    float64
	FreezeOnComplete bool
}

// TotalFrames is the frame count the combo-timing check divides by.
func (d AnimationDef) TotalFrames() int {
	return d.Last + 1
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:           {First: 1, Last: 23, FrameDuration: 0.12},
		IdleToWalk:     {First: 1, Last: 6, FrameDuration: 0.06},
		IdleToRun:      {First: 1, Last: 7, FrameDuration: 0.06},
		Walk:           {First: 1, Last: 11, FrameDuration: 0.09},
		Run:            {First: 1, Last: 7, FrameDuration: 0.07},
		Jump:           {First: 1, Last: 26, FrameDuration: 0.05},
		Fall:           {First: 1, Last: 19, FrameDuration: 0.1},
		Land:           {First: 1, Last: 20, FrameDuration: 0.02},
		Punch:          {First: 1, Last: 12, FrameDuration: 0.03},
		PunchCombo:     {First: 1, Last: 7, FrameDuration: 0.05},
		Kick:           {First: 1, Last: 20, FrameDuration: 0.02},
		KickCombo:      {First: 1, Last: 19, FrameDuration: 0.02},
		PunchKickCombo: {First: 1, Last: 16, FrameDuration: 0.03},
		JumpPunch:      {First: 1, Last: 17, FrameDuration: 0.02},
		JumpKick:       {First: 1, Last: 19, FrameDuration: 0.02},
		Defeat:         {First: 1, Last: 20, FrameDuration: 0.1, FreezeOnComplete: true},
	},
	"ghost": {
		Idle: {First: 1, Last: 11, FrameDuration: 0.1},
	},
}

// PlayerAnimation looks up the player's strip for a state. Every state
// in the machine has one.
func PlayerAnimation(s StateID) AnimationDef {
	def, ok := CharacterAnimations["player"][s]
	if !ok {
		panic("config: no player animation for state " + s.String())
	}
	return def
}
