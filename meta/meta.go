// meta/meta.go
package meta

// DEPTH defines the default search depth in plies.
const DEPTH = 4

// GO_ROUTINES defines the number of goroutines searching root moves.
const GO_ROUTINES = 1

// GAMES defines the number of games per colour in a tournament.
const GAMES = 50

// SEED seeds the random baseline agent.
const SEED = 1

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "experiments"
