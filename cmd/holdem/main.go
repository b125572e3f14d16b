package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/chevcast/poker-engine/table"
)

type CLI struct {
	Config string `short:"c" help:"Path to an HCL config file" default:"holdem.hcl"`
	Name   string `short:"n" help:"Your name at the table" default:"you"`
	Debug  bool   `short:"d" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	level := zerolog.WarnLevel
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if err := run(cli, logger); err != nil {
		logger.Error().Err(err).Msg("game ended with an error")
		ctx.Exit(1)
	}
	ctx.Exit(0)
}

func run(cli CLI, logger zerolog.Logger) error {
	config, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	tbl, err := table.New(
		config.Table.BuyIn,
		config.Table.SmallBlind,
		config.Table.BigBlind,
		table.WithSeatCount(config.Table.Seats),
		table.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	human, err := seatPlayer(tbl, cli.Name, config.Table.BuyIn)
	if err != nil {
		return err
	}
	for _, bot := range config.Bots {
		if _, err := seatPlayer(tbl, bot.Name, bot.BuyIn); err != nil {
			return err
		}
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Printf("blinds %d/%d, buy-in %d\n\n", config.Table.SmallBlind, config.Table.BigBlind, config.Table.BuyIn)

	reader := bufio.NewReader(os.Stdin)
	for {
		if err := tbl.DealCards(); err != nil {
			fmt.Println("not enough players to continue")
			return nil
		}

		for {
			_, active := tbl.CurrentRound()
			if !active {
				break
			}
			actor := tbl.CurrentActor()
			if actor == nil {
				break
			}
			if actor == human {
				fmt.Println(renderTable(tbl, human))
				if err := promptAction(tbl, human, reader); err != nil {
					return err
				}
			} else {
				botAction(tbl, actor, logger)
			}
		}

		fmt.Println(renderTable(tbl, human))
		fmt.Print(renderWinners(tbl))

		if human.StackSize() == 0 {
			fmt.Println("you are out of chips")
			return nil
		}
		fmt.Print("\ndeal the next hand? [Y/n] ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		if answer := strings.ToLower(strings.TrimSpace(line)); answer == "n" || answer == "q" {
			return nil
		}
		fmt.Println()
	}
}

func seatPlayer(tbl *table.Table, id string, buyIn int) (*table.Player, error) {
	if _, err := tbl.SitDown(id, buyIn); err != nil {
		return nil, fmt.Errorf("seating %s: %w", id, err)
	}
	return tbl.PlayerByID(id)
}

// promptAction reads one action from stdin and applies it, re-prompting on
// anything the table rejects.
func promptAction(tbl *table.Table, p *table.Player, reader *bufio.Reader) error {
	for {
		legal := tbl.LegalActions(p)
		names := make([]string, len(legal))
		for i, a := range legal {
			names[i] = a.String()
		}
		fmt.Printf("your action (%s): ", strings.Join(names, ", "))

		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 0 {
			continue
		}

		amount := 0
		if len(fields) > 1 {
			amount, err = strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("amount must be a number")
				continue
			}
		}

		switch fields[0] {
		case "check":
			err = tbl.CheckAction(p)
		case "call":
			err = tbl.CallAction(p)
		case "bet":
			err = tbl.BetAction(p, amount)
		case "raise":
			err = tbl.RaiseAction(p, amount)
		case "fold":
			err = tbl.FoldAction(p)
		case "quit", "q":
			return fmt.Errorf("player quit")
		default:
			fmt.Println("unknown action")
			continue
		}
		if err != nil {
			fmt.Printf("%v\n", err)
			continue
		}
		return nil
	}
}

// botAction checks when possible and otherwise calls. Station poker, but it
// exercises every street.
func botAction(tbl *table.Table, p *table.Player, logger zerolog.Logger) {
	legal := tbl.LegalActions(p)
	var err error
	switch {
	case hasLegal(legal, table.Check):
		logger.Debug().Str("bot", p.ID()).Msg("checks")
		err = tbl.CheckAction(p)
	case hasLegal(legal, table.Call):
		logger.Debug().Str("bot", p.ID()).Msg("calls")
		err = tbl.CallAction(p)
	default:
		logger.Debug().Str("bot", p.ID()).Msg("folds")
		err = tbl.FoldAction(p)
	}
	if err != nil {
		logger.Error().Err(err).Str("bot", p.ID()).Msg("bot action rejected")
	}
}

func hasLegal(actions []table.Action, action table.Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
