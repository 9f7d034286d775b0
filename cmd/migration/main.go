package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/contacts-web/internal/config"
)

// Usage example on the command line:
// > DBHOST=localhost DBUSER=dirk DBPWD=bullo92 go run main.go -file=../../scripts/database.sql
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		panic(err)
	}
	db := sqlx.MustOpen("mysql", cfg.DSN())
	defer db.Close()

	filePtr := flag.String("file", "database.sql", "the sql file to execute")
	flag.Parse()

	readFile, err := os.Open(*filePtr) // nosemgrep
	if err != nil {
		panic(err)
	}
	defer readFile.Close()

	statements, err := splitStatements(readFile)
	if err != nil {
		panic(err)
	}
	for _, statement := range statements {
		db.MustExec(statement)
	}
	fmt.Println("migration finished:", *filePtr)
}

// splitStatements collects the lines of a SQL script into statements. A statement
// ends with the line that contains a semicolon; comment lines are skipped. Text
// after the last semicolon is an error, as is a failure while reading.
func splitStatements(file io.Reader) ([]string, error) {
	var statements []string
	fileScanner := bufio.NewScanner(file)
	fileScanner.Split(bufio.ScanLines)
	builder := strings.Builder{}
	for fileScanner.Scan() {
		line := fileScanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		builder.WriteString(line)
		builder.WriteString(" ")
		if strings.Contains(line, ";") {
			statements = append(statements, builder.String())
			builder = strings.Builder{}
		}
	}
	if err := fileScanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read sql file: %w", err)
	}
	if rest := strings.TrimSpace(builder.String()); rest != "" {
		return nil, fmt.Errorf("statement without terminating semicolon: %q", rest)
	}
	return statements, nil
}
