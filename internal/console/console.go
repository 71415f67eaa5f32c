package console

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/dinaMadelen/elevator-dispatch/internal/building"
	"github.com/dinaMadelen/elevator-dispatch/internal/controller"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevator"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevconsts"
	"github.com/dinaMadelen/elevator-dispatch/internal/elevstatus"
	"github.com/dinaMadelen/elevator-dispatch/internal/logger"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var Log = logger.GetLogger()

var errQuit = errors.New("quit")

const helpText = `Commands:
  request <floor> <load> <up|down>   call an elevator to a floor
  status <id>                        show one elevator
  list                               show all elevators
  help                               show this text
  quit                               leave
`

// Console reads one command per line and prints the outcome. Command errors
// are printed and do not end the loop.
type Console struct {
	ctrl     *controller.Controller
	building *building.Building
	printer  *message.Printer
}

func New(ctrl *controller.Controller, b *building.Building) *Console {
	return &Console{
		ctrl:     ctrl,
		building: b,
		printer:  message.NewPrinter(language.English),
	}
}

// Run returns nil on "quit" or end of input.
func (c *Console) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	c.printer.Fprintf(out, "Building %s: %d floors, %d elevators. Type \"help\" for commands.\n",
		c.building.Name, c.building.NumberOfFloors(), len(c.building.Elevators()))

	for {
		c.printer.Fprint(out, "> ")
		if !scanner.Scan() {
			c.printer.Fprintln(out)
			return scanner.Err()
		}

		err := c.execute(strings.Fields(scanner.Text()), out)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			Log.Debug().Err(err).Msg("Command failed")
			c.printer.Fprintf(out, "error: %v\n", err)
		}
	}
}

func (c *Console) execute(fields []string, out io.Writer) error {
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "request", "r":
		if len(fields) != 4 {
			return errors.New("usage: request <floor> <load> <up|down>")
		}
		floor, err := strconv.Atoi(fields[1])
		if err != nil {
			return errors.New("floor must be a number")
		}
		load, err := strconv.Atoi(fields[2])
		if err != nil {
			return errors.New("load must be a number")
		}
		elev, err := c.ctrl.RequestElevator(floor, load, fields[3])
		if err != nil {
			return err
		}
		c.printer.Fprintf(out, "Elevator %d (%s) sent to floor %d\n", elev.ID(), elev.Type(), floor)
		c.printStatus(out, elev, elev.GetStatus())

	case "status", "s":
		if len(fields) != 2 {
			return errors.New("usage: status <id>")
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return errors.New("id must be a number")
		}
		status, err := c.ctrl.GetElevatorStatus(id)
		if err != nil {
			return err
		}
		elev, err := c.building.ElevatorByID(id)
		if err != nil {
			return err
		}
		c.printStatus(out, elev, status)

	case "list", "l":
		for _, elev := range c.building.Elevators() {
			c.printStatus(out, elev, elev.GetStatus())
		}

	case "help", "h", "?":
		c.printer.Fprint(out, helpText)

	case "quit", "q", "exit":
		return errQuit

	default:
		return errors.New("unknown command " + strconv.Quote(fields[0]) + ", try \"help\"")
	}
	return nil
}

func (c *Console) printStatus(out io.Writer, elev elevator.Elevator, status elevstatus.ElevatorStatus) {
	unit := "passengers"
	if elev.Type() == elevconsts.Freight {
		unit = "kg"
	}
	state := "idle"
	if status.IsMoving {
		state = "moving"
	}
	c.printer.Fprintf(out, "  #%d %-9s floor %2d  dirn %-4s  %-6s  load %d/%d %s\n",
		elev.ID(), elev.Type(), status.CurrentFloor, status.Direction, state, status.Load, elev.Capacity(), unit)
}
