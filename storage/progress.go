package storage

import "github.com/lixenwraith/starfall/parameter"

// Progress wraps the tether save keys
type Progress struct {
	kv KV
}

// NewProgress reads tether progress from kv
func NewProgress(kv KV) *Progress {
	return &Progress{kv: kv}
}

// Stage returns the highest unlocked stage, at least 1
func (p *Progress) Stage() int {
	s := Int(p.kv, parameter.KeyStageProgress, parameter.DefaultStageProgress)
	if s < parameter.DefaultStageProgress {
		return parameter.DefaultStageProgress
	}
	return s
}

// Unlocked reports whether stage can be played; infinity is always open
func (p *Progress) Unlocked(stage int) bool {
	if stage == parameter.TetherInfinityStage {
		return true
	}
	return stage >= 1 && stage <= p.Stage()
}

// Complete unlocks the stage after the cleared one
func (p *Progress) Complete(stage int) error {
	if stage == parameter.TetherInfinityStage {
		return nil
	}
	next := stage + 1
	if next > parameter.StageProgressComplete {
		next = parameter.StageProgressComplete
	}
	_, err := RaiseInt(p.kv, parameter.KeyStageProgress, next, parameter.DefaultStageProgress)
	return err
}

// Best returns the infinity mode best score
func (p *Progress) Best() int {
	return Int(p.kv, parameter.KeyBestScore, parameter.DefaultBestScore)
}

// RecordBest stores score if it beats the best, reporting a new record
func (p *Progress) RecordBest(score int) (bool, error) {
	return RaiseInt(p.kv, parameter.KeyBestScore, score, parameter.DefaultBestScore)
}
