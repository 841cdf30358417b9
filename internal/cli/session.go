// Package cli runs the interactive menu session on a line-oriented console.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/inventory-cli/internal/codec"
	"github.com/rogerio-castellano/inventory-cli/internal/csvio"
	"github.com/rogerio-castellano/inventory-cli/internal/models"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
)

// Session drives the menu loop over a reader/writer pair, so tests can
// script it without a terminal.
type Session struct {
	in         *bufio.Reader
	out        io.Writer
	products   repo.ProductRepository
	backupPath string
}

func NewSession(in io.Reader, out io.Writer, products repo.ProductRepository, backupPath string) *Session {
	return &Session{
		in:         bufio.NewReader(in),
		out:        out,
		products:   products,
		backupPath: backupPath,
	}
}

// Run renders the menu and dispatches commands until the user quits or the
// input is exhausted. End of input anywhere is a normal shutdown, not an
// error.
func (s *Session) Run() error {
	for {
		s.printMenu()
		line, err := s.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch ParseCommand(line) {
		case CommandAdd:
			err = s.addProduct()
		case CommandView:
			err = s.viewProduct()
		case CommandBackup:
			err = s.backup()
		case CommandQuit:
			return nil
		case CommandUnknown:
			// ignored, the menu re-renders
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "Enter q to quit.")
	fmt.Fprintln(s.out, "a) Add a new product to the database")
	fmt.Fprintln(s.out, "v) View a single product's inventory")
	fmt.Fprintln(s.out, "b) Make a backup of the entire inventory")
	fmt.Fprint(s.out, "Action: ")
}

func (s *Session) addProduct() error {
	fmt.Fprint(s.out, "Please enter product name: ")
	name, err := s.readLine()
	if err != nil {
		return err
	}

	quantity, err := s.promptInt("Please enter quantity of product in stock: ", "Quantity needs to be a number, please retry")
	if err != nil {
		return err
	}

	priceCents, err := s.promptPrice()
	if err != nil {
		return err
	}

	_, _, err = s.products.Upsert(models.Product{
		Name:       name,
		Quantity:   quantity,
		PriceCents: priceCents,
		UpdatedAt:  time.Now(),
	})
	return err
}

func (s *Session) viewProduct() error {
	id, err := s.promptInt("Enter product id: ", "Product id needs to be a number, please retry")
	if err != nil {
		return err
	}

	p, err := s.products.GetByID(id)
	if errors.Is(err, repo.ErrProductNotFound) {
		fmt.Fprintln(s.out, "Sorry, product with this ID not found")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Product %d:  %s\n", p.ID, p.Name)
	fmt.Fprintf(s.out, "Price: %s\n", codec.FormatPrice(p.PriceCents))
	fmt.Fprintf(s.out, "Quantity in stock: %d\n", p.Quantity)
	fmt.Fprintf(s.out, "Date Last Updated: %s\n", codec.FormatDate(p.UpdatedAt))

	fmt.Fprint(s.out, "Press any key to continue ")
	if _, err := s.readLine(); err != nil {
		return err
	}
	return nil
}

func (s *Session) backup() error {
	if _, err := csvio.ExportBackup(s.products, s.backupPath); err != nil {
		fmt.Fprintf(s.out, "Backup failed: %v\n", err)
	}
	return nil
}

// promptInt asks until the input parses as an integer. Only end of input
// breaks the loop.
func (s *Session) promptInt(prompt, retry string) (int, error) {
	for {
		fmt.Fprint(s.out, prompt)
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		if n, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr == nil {
			return n, nil
		}
		fmt.Fprintln(s.out, retry)
	}
}

func (s *Session) promptPrice() (int, error) {
	for {
		fmt.Fprint(s.out, "Please enter product price: ")
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		if cents, convErr := codec.ParsePrice(line); convErr == nil {
			return cents, nil
		}
		fmt.Fprintln(s.out, "Invalid price, please retry")
	}
}

// readLine returns the next input line without its terminator. A final
// unterminated line is returned once before io.EOF.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if line == "" && err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
