package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const chatPrompt = "scout> "

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to the scouting assistant",
	Long: `Asks the scouting assistant a question. The assistant searches the web to
answer and keeps the conversation for follow-up questions.

With a message argument the reply is printed and the command exits.
Without one an interactive prompt starts.

Prompt commands:
  /reset - start a new conversation
  /exit  - leave`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) > 0 {
		cmd.Println(chatService.Send(ctx, strings.Join(args, " ")))
		return nil
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return chatTerminal(ctx, f, cmd.OutOrStdout())
	}
	return chatLines(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}

// chatTerminal runs the prompt with line editing and history.
func chatTerminal(ctx context.Context, in *os.File, out io.Writer) error {
	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer term.Restore(int(in.Fd()), state) //nolint:errcheck

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, chatPrompt)

	fmt.Fprint(t, "Titan scouting assistant. Type /exit to leave.\r\n")
	for {
		line, err := t.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		reply, quit := chatTurn(ctx, line)
		if quit {
			return nil
		}
		if reply != "" {
			fmt.Fprint(t, strings.ReplaceAll(reply, "\n", "\r\n")+"\r\n")
		}
	}
}

// chatLines runs the prompt over plain line input, e.g. a pipe.
func chatLines(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, chatPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		reply, quit := chatTurn(ctx, scanner.Text())
		if quit {
			return nil
		}
		if reply != "" {
			fmt.Fprintln(out, reply)
		}
	}
}

// chatTurn handles one input line. quit is true on /exit.
func chatTurn(ctx context.Context, line string) (reply string, quit bool) {
	switch strings.TrimSpace(line) {
	case "":
		return "", false
	case "/exit", "/quit":
		return "", true
	case "/reset":
		chatService.Reset()
		return "Conversation cleared.", false
	}
	return chatService.Send(ctx, line), false
}
