package domain

import "fmt"

// Identifier of a fixed block of narrative text.
type SceneID string

const (
	SceneOpening  SceneID = "opening"
	SceneGuessing SceneID = "guessing"
	SceneVictory  SceneID = "victory"
	SceneDefeat   SceneID = "defeat"
)

// CustomerCount is the number of customer scenes played before the guessing phase.
const CustomerCount = 6

// CustomerScene returns the scene id for the n-th customer (1-based).
func CustomerScene(n int) SceneID {
	return SceneID(fmt.Sprintf("customer_%d", n))
}

// RequiredScenes lists every scene a script must provide, in play order.
func RequiredScenes() []SceneID {
	ids := make([]SceneID, 0, CustomerCount+4)
	ids = append(ids, SceneOpening)
	for i := 1; i <= CustomerCount; i++ {
		ids = append(ids, CustomerScene(i))
	}
	return append(ids, SceneGuessing, SceneVictory, SceneDefeat)
}
