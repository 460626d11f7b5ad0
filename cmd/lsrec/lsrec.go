package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/iov-one/quorum/record"
	"github.com/iov-one/quorum/x/notary"
)

func main() {
	hexFl := flag.Bool("hex", false, "Input is hex encoded.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
	%s [options] [record-file]

Print the state of a notary escrow record.

The record is read from the given file or from standard input. Use this to
inspect what a deployed escrow has collected so far: the notary roster, the
approval bits and counter, the configured threshold and the audit stamp of
the most recent finish attempt.

`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	rec, err := readRecord(flag.Arg(0), *hexFl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := printRecord(os.Stdout, rec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readRecord(path string, hexEncoded bool) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	if path == "" {
		raw, err = ioutil.ReadAll(os.Stdin)
	} else {
		raw, err = ioutil.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read record: %s", err)
	}
	raw = bytes.TrimSpace(raw)
	if hexEncoded {
		dec := make([]byte, hex.DecodedLen(len(raw)))
		n, err := hex.Decode(dec, raw)
		if err != nil {
			return nil, fmt.Errorf("cannot decode record: %s", err)
		}
		raw = dec[:n]
	}
	if len(raw) > record.MaxSize {
		return nil, fmt.Errorf("record too big: %d bytes", len(raw))
	}
	return raw, nil
}

func printRecord(out io.Writer, rec []byte) error {
	count, err := notary.NotaryCount(rec)
	if err != nil {
		return fmt.Errorf("broken roster: %s", err)
	}
	fmt.Fprintf(out, "notaries: %d\n", count)
	for i := 0; i < count; i++ {
		id, ok := record.Lookup(rec, notary.NotaryKey(i))
		if !ok {
			id = []byte("(unset)")
		}
		state := " "
		if notary.Approved(rec, i) {
			state = "*"
		}
		fmt.Fprintf(out, "%s %d\t%s", state, i, id)
		if seq, ok := record.Lookup(rec, notary.ApproveSeqKey(i)); ok {
			fmt.Fprintf(out, "\t(seq %s)", seq)
		}
		fmt.Fprintln(out)
	}

	threshold, err := notary.Threshold(rec)
	if err != nil {
		return fmt.Errorf("broken threshold: %s", err)
	}
	fmt.Fprintf(out, "approvals: %d of %d required\n", notary.ApprovalCount(rec), threshold)
	if err := notary.ThresholdMet(rec); err == nil {
		fmt.Fprintln(out, "release: permitted")
	} else {
		fmt.Fprintf(out, "release: denied (%s)\n", err)
	}

	if tag, ok := record.Lookup(rec, notary.KeyLastResult); ok {
		seq, _ := record.Lookup(rec, notary.KeyLastAttemptSeq)
		fmt.Fprintf(out, "last attempt: %s (seq %s)\n", tag, seq)
	}
	return nil
}
