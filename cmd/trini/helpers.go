package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"trini/internal/genre"
	"trini/internal/profile"
)

// parseGenres resolves genre flags given as codes ("28") or names ("acción").
func parseGenres(table *genre.Table, values []string) ([]genre.Code, error) {
	var out []genre.Code
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			code, ok := resolveGenre(table, part)
			if !ok {
				return nil, fmt.Errorf("unknown genre %q (run `trini genres` for the list)", part)
			}
			if !slices.Contains(out, code) {
				out = append(out, code)
			}
		}
	}
	return out, nil
}

func resolveGenre(table *genre.Table, value string) (genre.Code, bool) {
	if n, err := strconv.Atoi(value); err == nil {
		_, ok := table.Info(genre.Code(n))
		return genre.Code(n), ok
	}
	return table.Lookup(value)
}

// loadUser reads the optional profile file and layers flag values on top.
func loadUser(path string, excludes []string, preferred []genre.Code) (*profile.UserContext, error) {
	user := &profile.UserContext{}
	if path = strings.TrimSpace(path); path != "" {
		loaded, err := profile.Load(path)
		if err != nil {
			return nil, err
		}
		user = loaded
	}
	user.RoomVotedMovies = append(user.RoomVotedMovies, splitList(excludes)...)
	for _, code := range preferred {
		user.AddPreferredGenre(code)
	}
	return user, nil
}

func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// readArgument returns arg, or stdin when arg is "-".
func readArgument(arg string, stdin io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
