package main

import "testing"

func TestRunNoArgsReturnsUsageCode(t *testing.T) {
	if code := run(nil); code != 2 {
		t.Fatalf("run(nil) = %d, want 2", code)
	}
}

func TestRunUnknownSubcommandReturnsUsageCode(t *testing.T) {
	if code := run([]string{"bogus"}); code != 2 {
		t.Fatalf("run([bogus]) = %d, want 2", code)
	}
}
