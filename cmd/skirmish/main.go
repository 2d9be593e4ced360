// Command skirmish drives a battle from the terminal: two human seats
// trading turns over stdin, an AI opponent, or two AI seats fighting
// each other unattended.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jruiznavarro/skirmishcore/internal/aistrategy"
	"github.com/jruiznavarro/skirmishcore/internal/core"
	"github.com/jruiznavarro/skirmishcore/internal/coordinator"
	"github.com/jruiznavarro/skirmishcore/internal/enginelog"
	"github.com/jruiznavarro/skirmishcore/internal/event"
	"github.com/jruiznavarro/skirmishcore/internal/mediator"
	"github.com/jruiznavarro/skirmishcore/internal/phase"
	"github.com/jruiznavarro/skirmishcore/internal/phases/combatphase"
	"github.com/jruiznavarro/skirmishcore/internal/phases/movement"
	"github.com/jruiznavarro/skirmishcore/internal/phases/recovery"
	"github.com/jruiznavarro/skirmishcore/internal/phases/setup"
	"github.com/jruiznavarro/skirmishcore/internal/phases/shooting"
	"github.com/jruiznavarro/skirmishcore/internal/view"
	"github.com/jruiznavarro/skirmishcore/pkg/dice"
)

func main() {
	mode := flag.String("mode", "pvai", "Battle mode: pvp, pvai, aivai")
	seed := flag.Int64("seed", 0, "RNG seed (0 = use current time)")
	logLevel := flag.String("log", "warn", "Engine log level: debug, info, warn, error")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	log := enginelog.New(level)

	fmt.Println("=== Skirmish ===")
	fmt.Printf("Mode: %s | Seed: %d\n\n", *mode, *seed)

	p1 := warriorsOfTheIronGuard()
	p2 := warriorsOfTheBrokenFang()
	snapshot := core.NewSnapshot("skirmish", *seed, p1, p2)
	state := core.NewGameState(newGameID(*seed), "skirmish", *seed, time.Now(), p1, p2)
	roller := dice.NewRoller(*seed)
	now := time.Now

	modules := []phase.Module{
		setup.Module{Now: now},
		recovery.Module{Roller: roller, Now: now},
		movement.Module{Now: now},
		shooting.Module{Roller: roller, Now: now},
		combatphase.Module{Roller: roller, Now: now},
	}
	coord := coordinator.New(state, snapshot, roller, modules, log)

	m1 := mediator.New(coord, mediator.LocalPlayer{ID: "player-1", PlayerNumber: 1}, log)
	m1.DisableTurnValidation()

	switch *mode {
	case "pvp":
		for !coord.State.Ended {
			if !runCLI(m1, 1, "Player 1") || !runCLI(m1, 2, "Player 2") {
				break
			}
		}
	case "pvai":
		m1.EnableAI(aistrategy.Heuristic{}, 2)
		runCLI(m1, 1, "Player")
	case "aivai":
		m1.EnableAI(aistrategy.Heuristic{}, 1)
		m1.EnableAI(aistrategy.Heuristic{}, 2)
		driveBothAI(m1)
	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s (use pvp, pvai, or aivai)\n", *mode)
		os.Exit(1)
	}

	printBattleLog(coord.State)
	printOutcome(coord.State)
}

// runCLI drives one human-controlled seat to completion: it reads
// screen commands off the mediator, prompts for a command line, and
// submits the matching event, stopping once the battle ends or play
// passes to the other seat. It returns true when play passed to the
// other seat, and false when the battle ended or stdin was exhausted.
func runCLI(m *mediator.Mediator, playerNumber int, label string) bool {
	reader := bufio.NewReader(os.Stdin)
	for {
		state := m.Coordinator.State
		if state.Ended {
			return false
		}
		if state.CurrentPlayer != playerNumber {
			return true
		}
		screen := m.Coordinator.GetCurrentScreen()
		printScreen(screen, label)

		if screen.Screen == view.ScreenGameOver {
			return false
		}

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		evtType, payload, ok := parseCommand(strings.TrimSpace(line), screen)
		if !ok {
			fmt.Println("unrecognized command, try again")
			continue
		}
		res := m.SubmitEvent(evtType, payload)
		if !res.Success {
			fmt.Printf("rejected: %s\n", res.Error.Message)
		}
	}
}

// driveBothAI runs an AI-vs-AI battle to completion with no terminal
// input: each seat is enabled as AI, so the mediator auto-plays both
// sides the moment its coordinator returns a screen for that seat. The
// only job left here is to nudge the loop forward and stop at the end.
func driveBothAI(m *mediator.Mediator) {
	for !m.Coordinator.State.Ended {
		res := m.SubmitEvent(event.AdvancePhase, event.AdvancePhasePayload{})
		if !res.Success {
			break
		}
	}
}

// parseCommand turns a line of CLI input into the event type and
// payload the current screen expects. Recognized verbs are a small,
// fixed vocabulary; anything else falls through to false.
func parseCommand(line string, screen view.Command) (event.Type, any, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, false
	}
	verb := strings.ToLower(fields[0])
	arg := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}
	argID := func(i int) core.WarriorID {
		n, _ := strconv.Atoi(arg(i))
		return core.WarriorID(n)
	}

	switch verb {
	case "select":
		return event.SelectWarrior, event.SelectWarriorPayload{WarriorID: argID(1)}, true
	case "target":
		return event.SelectTarget, event.SelectTargetPayload{TargetID: argID(1)}, true
	case "position", "confirm-position":
		return event.ConfirmPosition, event.ConfirmPositionPayload{}, true
	case "move":
		return event.ConfirmMove, event.ConfirmMovePayload{MoveType: event.MoveTypeMove}, true
	case "run":
		return event.ConfirmMove, event.ConfirmMovePayload{MoveType: event.MoveTypeRun}, true
	case "charge":
		return event.ConfirmCharge, event.ConfirmChargePayload{TargetID: argID(1)}, true
	case "rally":
		return event.RecoveryAction, event.RecoveryActionPayload{Action: event.Rally, WarriorID: argID(1)}, true
	case "standup":
		return event.RecoveryAction, event.RecoveryActionPayload{Action: event.StandUp, WarriorID: argID(1)}, true
	case "recover":
		return event.RecoveryAction, event.RecoveryActionPayload{Action: event.RecoverFromStunned, WarriorID: argID(1)}, true
	case "shoot", "confirm-shot":
		return event.ConfirmShot, event.ConfirmShotPayload{TargetID: argID(1)}, true
	case "strike", "melee":
		return event.ConfirmMelee, event.ConfirmMeleePayload{TargetID: argID(1), WeaponKey: arg(2)}, true
	case "ok", "ack", "acknowledge":
		return event.Acknowledge, event.AcknowledgePayload{}, true
	case "rout":
		return event.ConfirmRoutTest, event.ConfirmRoutTestPayload{}, true
	case "advance", "pass", "done":
		return event.AdvancePhase, event.AdvancePhasePayload{}, true
	case "undo":
		return event.Undo, event.UndoPayload{}, true
	default:
		return "", nil, false
	}
}

func printScreen(screen view.Command, label string) {
	fmt.Printf("\n--- %s | turn %d | %s phase | %s ---\n", label, screen.Turn, screen.Phase, screen.Screen)
	if screen.Data != nil {
		fmt.Printf("%+v\n", screen.Data)
	}
	if len(screen.AvailableEvents) > 0 {
		verbs := make([]string, 0, len(screen.AvailableEvents))
		for _, e := range screen.AvailableEvents {
			verbs = append(verbs, string(e))
		}
		fmt.Printf("available: %s\n", strings.Join(verbs, ", "))
	}
}

func printBattleLog(state *core.GameState) {
	fmt.Println("\n=== Battle Log ===")
	for _, entry := range state.Log {
		fmt.Printf("[turn %d, %s, player %d] %s\n", entry.Turn, entry.Phase, entry.Player, entry.Text)
	}
}

func printOutcome(state *core.GameState) {
	fmt.Println("\n=== Outcome ===")
	switch {
	case state.Winner == nil:
		fmt.Printf("Draw: %s\n", state.EndReason)
	default:
		fmt.Printf("Player %d wins: %s\n", *state.Winner, state.EndReason)
	}
}

func newGameID(seed int64) string {
	return fmt.Sprintf("skirmish-%d", seed)
}

// warriorsOfTheIronGuard fields a small hero-led warband armed for
// melee: a sword-and-buckler hero backed by axe- and spear-wielding
// henchmen.
func warriorsOfTheIronGuard() *core.Warband {
	return &core.Warband{
		ID:           "iron-guard",
		DisplayName:  "The Iron Guard",
		PlayerNumber: 1,
		Warriors: []*core.Warrior{
			core.NewWarrior(1, "Captain Brandt", core.ArchetypeHero,
				core.Profile{M: 4, WS: 4, BS: 3, S: 3, T: 3, W: 2, I: 4, A: 2, Ld: 8},
				core.Equipment{MeleeWeapons: []string{"swordbuckler"}, Armor: []string{"heavyArmor", "shield"}}, nil),
			core.NewWarrior(2, "Gerta", core.ArchetypeHenchman,
				core.Profile{M: 4, WS: 3, BS: 3, S: 3, T: 3, W: 1, I: 3, A: 1, Ld: 7},
				core.Equipment{MeleeWeapons: []string{"axe"}, Armor: []string{"lightArmor"}}, nil),
			core.NewWarrior(3, "Oskar", core.ArchetypeHenchman,
				core.Profile{M: 4, WS: 3, BS: 3, S: 3, T: 3, W: 1, I: 3, A: 1, Ld: 7},
				core.Equipment{MeleeWeapons: []string{"spear"}, Armor: []string{"lightArmor"}}, nil),
			core.NewWarrior(4, "Finn", core.ArchetypeHenchman,
				core.Profile{M: 4, WS: 3, BS: 3, S: 3, T: 3, W: 1, I: 3, A: 1, Ld: 7},
				core.Equipment{RangedWeapons: []string{"crossbow"}, MeleeWeapons: []string{"dagger"}}, nil),
		},
	}
}

// warriorsOfTheBrokenFang fields a raider band: fast, lightly armored,
// and biased toward ranged harassment before the charge.
func warriorsOfTheBrokenFang() *core.Warband {
	return &core.Warband{
		ID:           "broken-fang",
		DisplayName:  "The Broken Fang",
		PlayerNumber: 2,
		Warriors: []*core.Warrior{
			core.NewWarrior(10, "Skarg", core.ArchetypeHero,
				core.Profile{M: 5, WS: 4, BS: 3, S: 4, T: 4, W: 2, I: 3, A: 2, Ld: 8},
				core.Equipment{MeleeWeapons: []string{"mace"}, Armor: []string{"lightArmor"}}, nil),
			core.NewWarrior(11, "Rip", core.ArchetypeHenchman,
				core.Profile{M: 5, WS: 3, BS: 3, S: 3, T: 3, W: 1, I: 3, A: 1, Ld: 6},
				core.Equipment{RangedWeapons: []string{"bow"}, MeleeWeapons: []string{"dagger"}}, nil),
			core.NewWarrior(12, "Snarl", core.ArchetypeHenchman,
				core.Profile{M: 5, WS: 3, BS: 3, S: 3, T: 3, W: 1, I: 3, A: 1, Ld: 6},
				core.Equipment{RangedWeapons: []string{"sling"}, MeleeWeapons: []string{"dagger"}}, nil),
			core.NewWarrior(13, "Bram", core.ArchetypeHenchman,
				core.Profile{M: 5, WS: 3, BS: 3, S: 3, T: 3, W: 1, I: 3, A: 1, Ld: 6},
				core.Equipment{MeleeWeapons: []string{"flail"}}, nil),
		},
	}
}
