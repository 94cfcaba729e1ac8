//go:build !production

package testutil

// RecordingSound 只记录播放过的音效，用于断言播放顺序
type RecordingSound struct {
	Played []string
}

func (r *RecordingSound) Play(name string) { r.Played = append(r.Played, name) }
