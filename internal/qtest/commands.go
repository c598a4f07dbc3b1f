package qtest

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"deedles.dev/listq"
)

type command struct {
	usage string
	help  string

	minArgs, maxArgs int

	// needsQueue commands fail with ErrNoQueue if there is no current
	// queue.
	needsQueue bool

	// show commands print the current queue after running.
	show bool

	run func(in *Interp, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help": {usage: "help", help: "Show this list", maxArgs: 0, run: (*Interp).help},
		"quit": {usage: "quit", help: "Stop running commands", maxArgs: 0, run: func(*Interp, []string) error { return errQuit }},

		"new":  {usage: "new", help: "Create a new queue and make it current", maxArgs: 0, run: (*Interp).newQueue},
		"free": {usage: "free", help: "Free the current queue", maxArgs: 0, needsQueue: true, run: (*Interp).freeQueue},
		"prev": {usage: "prev", help: "Switch to the previous queue in the chain", maxArgs: 0, needsQueue: true, show: true, run: (*Interp).prev},
		"next": {usage: "next", help: "Switch to the next queue in the chain", maxArgs: 0, needsQueue: true, show: true, run: (*Interp).next},
		"show": {usage: "show", help: "Print every queue in the chain", maxArgs: 0, run: (*Interp).showAll},

		"ih": {usage: "ih str [n]", help: "Insert str at the head n times", minArgs: 1, maxArgs: 2, needsQueue: true, show: true, run: (*Interp).insertHead},
		"it": {usage: "it str [n]", help: "Insert str at the tail n times", minArgs: 1, maxArgs: 2, needsQueue: true, show: true, run: (*Interp).insertTail},
		"rh": {usage: "rh [str]", help: "Remove from the head, optionally checking the value", maxArgs: 1, needsQueue: true, show: true, run: (*Interp).removeHead},
		"rt": {usage: "rt [str]", help: "Remove from the tail, optionally checking the value", maxArgs: 1, needsQueue: true, show: true, run: (*Interp).removeTail},

		"size":     {usage: "size", help: "Print the size of the current queue", maxArgs: 0, needsQueue: true, run: (*Interp).size},
		"dm":       {usage: "dm", help: "Delete the middle element", maxArgs: 0, needsQueue: true, show: true, run: (*Interp).deleteMid},
		"dedup":    {usage: "dedup", help: "Delete every element with a duplicated value", maxArgs: 0, needsQueue: true, show: true, run: (*Interp).deleteDup},
		"swap":     {usage: "swap", help: "Swap every pair of adjacent elements", maxArgs: 0, needsQueue: true, show: true, run: (*Interp).swap},
		"reverse":  {usage: "reverse", help: "Reverse the queue", maxArgs: 0, needsQueue: true, show: true, run: (*Interp).reverse},
		"reverseK": {usage: "reverseK k", help: "Reverse the queue in groups of k", minArgs: 1, maxArgs: 1, needsQueue: true, show: true, run: (*Interp).reverseK},
		"sort":     {usage: "sort", help: "Sort the queue", maxArgs: 0, needsQueue: true, show: true, run: (*Interp).sort},
		"ascend":   {usage: "ascend", help: "Delete elements with a smaller element after them", maxArgs: 0, needsQueue: true, show: true, run: (*Interp).ascendQueue},
		"descend":  {usage: "descend", help: "Delete elements with a greater element after them", maxArgs: 0, needsQueue: true, show: true, run: (*Interp).descendQueue},
		"merge":    {usage: "merge", help: "Merge every queue in the chain into the first", maxArgs: 0, needsQueue: true, show: true, run: (*Interp).merge},

		"option": {usage: "option [name value]", help: "Print or set an option (descend, length, echo)", maxArgs: 2, run: (*Interp).option},
	}
}

func (in *Interp) help([]string) error {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		c := commands[name]
		fmt.Fprintf(in.out, "  %-20v| %v\n", c.usage, c.help)
	}
	return nil
}

func (in *Interp) newQueue([]string) error {
	in.chain = append(in.chain, listq.New())
	in.cur = len(in.chain) - 1
	in.lg.Debug("queue created", zap.Int("index", in.cur))
	return in.show(in.Current())
}

func (in *Interp) freeQueue([]string) error {
	in.Current().Free()
	in.chain = slices.Delete(in.chain, in.cur, in.cur+1)
	in.lg.Debug("queue freed", zap.Int("index", in.cur))

	in.cur = min(in.cur, len(in.chain)-1)
	return in.show(in.Current())
}

func (in *Interp) prev([]string) error {
	in.cur = (in.cur + len(in.chain) - 1) % len(in.chain)
	return nil
}

func (in *Interp) next([]string) error {
	in.cur = (in.cur + 1) % len(in.chain)
	return nil
}

func (in *Interp) showAll([]string) error {
	if len(in.chain) == 0 {
		return in.show(nil)
	}

	for i, q := range in.chain {
		mark := " "
		if i == in.cur {
			mark = "*"
		}
		fmt.Fprintf(in.out, "%v%v: ", mark, i)
		if err := in.show(q); err != nil {
			return fmt.Errorf("queue %v: %w", i, err)
		}
	}
	return nil
}

func parseCount(args []string) (int, error) {
	if len(args) < 2 {
		return 1, nil
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("invalid count: %w", err)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid count %v", n)
	}
	return n, nil
}

func (in *Interp) insertHead(args []string) error {
	return in.insert(args, (*listq.Queue).InsertHead)
}

func (in *Interp) insertTail(args []string) error {
	return in.insert(args, (*listq.Queue).InsertTail)
}

func (in *Interp) insert(args []string, insert func(*listq.Queue, string) bool) error {
	n, err := parseCount(args)
	if err != nil {
		return err
	}

	q := in.Current()
	for range n {
		if !insert(q, args[0]) {
			return errors.New("insertion failed")
		}
	}
	return nil
}

func (in *Interp) removeHead(args []string) error {
	return in.remove(args, (*listq.Queue).RemoveHead)
}

func (in *Interp) removeTail(args []string) error {
	return in.remove(args, (*listq.Queue).RemoveTail)
}

func (in *Interp) remove(args []string, remove func(*listq.Queue, []byte) *listq.Element) error {
	buf := make([]byte, in.stringLength)
	e := remove(in.Current(), buf)
	if e == nil {
		return ErrEmpty
	}
	defer e.Release()

	got := e.Value
	if len(buf) > 0 {
		end := bytes.IndexByte(buf, 0)
		got = string(buf[:end])
	}
	fmt.Fprintf(in.out, "Removed %v from queue\n", got)

	if len(args) > 0 && args[0] != got {
		return fmt.Errorf("removed value %q, expected %q", got, args[0])
	}
	return nil
}

func (in *Interp) size([]string) error {
	fmt.Fprintf(in.out, "Queue size = %v\n", in.Current().Size())
	return in.Current().Check()
}

func (in *Interp) deleteMid([]string) error {
	if !in.Current().DeleteMid() {
		return ErrEmpty
	}
	return nil
}

func (in *Interp) deleteDup([]string) error {
	if !in.Current().DeleteDup() {
		return ErrEmpty
	}
	return nil
}

func (in *Interp) swap([]string) error {
	in.Current().Swap()
	return nil
}

func (in *Interp) reverse([]string) error {
	in.Current().Reverse()
	return nil
}

func (in *Interp) reverseK(args []string) error {
	k, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid k: %w", err)
	}

	in.Current().ReverseK(k)
	return nil
}

func (in *Interp) sort([]string) error {
	in.Current().Sort(in.descend)
	return nil
}

func (in *Interp) ascendQueue([]string) error {
	fmt.Fprintf(in.out, "Queue size = %v\n", in.Current().Ascend())
	return nil
}

func (in *Interp) descendQueue([]string) error {
	fmt.Fprintf(in.out, "Queue size = %v\n", in.Current().Descend())
	return nil
}

// merge merges the whole chain into its first queue and drops the
// queues that were emptied by it.
func (in *Interp) merge([]string) error {
	size := listq.Merge(in.chain, in.descend)
	for _, q := range in.chain[1:] {
		q.Free()
	}
	in.chain = in.chain[:1]
	in.cur = 0

	in.lg.Debug("queues merged", zap.Int("size", size))
	fmt.Fprintf(in.out, "Queue size = %v\n", size)
	return nil
}

func (in *Interp) option(args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintf(in.out, "descend = %v\nlength = %v\necho = %v\n", in.descend, in.stringLength, in.echo)
		return nil
	case 1:
		return errors.New("missing value")
	}

	switch name, val := args[0], args[1]; name {
	case "descend":
		v, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid descend: %w", err)
		}
		in.descend = v
	case "echo":
		v, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid echo: %w", err)
		}
		in.echo = v
	case "length":
		v, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid length: %w", err)
		}
		if v < 0 {
			return fmt.Errorf("invalid length %v", v)
		}
		in.stringLength = v
	default:
		return fmt.Errorf("unknown option %q", name)
	}
	return nil
}
