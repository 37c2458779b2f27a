// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package parser_test

import (
	"errors"
	gotoken "go/token"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/branchtree/internal/solidity/ast"
	. "fillmore-labs.com/branchtree/internal/solidity/parser"
	"fillmore-labs.com/branchtree/internal/solidity/scanner"
	"fillmore-labs.com/branchtree/internal/solidity/token"
)

const vault = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.20;

import "./Ownable.sol";
import {IERC20 as Token} from "@openzeppelin/contracts/token/ERC20/IERC20.sol";

error Unauthorized(address caller);

contract Vault is Ownable(msg.sender) {
    mapping(address user => uint256) public balances;
    uint256 public constant MAX = type(uint256).max;
    address immutable token;

    event Deposit(address indexed user, uint256 amount);

    modifier onlyPositive(uint256 amount) {
        require(amount > 0, "zero");
        _;
    }

    /// @notice Deposit funds.
    function deposit(uint256 amount) external payable onlyPositive(amount) returns (bool) {
        balances[msg.sender] += amount;
        emit Deposit(msg.sender, amount);
        return true;
    }

    // nolint:branchtree
    function withdraw(uint256 amount) public {
        if (balances[msg.sender] < amount) revert Unauthorized({caller: msg.sender});
        for (uint256 i = 0; i < 3; i++) {
            if (i == 2) break;
        }
        (bool ok, ) = msg.sender.call{value: amount}("");
        try IVault(token).ping() returns (uint256 v) {
            balances[msg.sender] = v;
        } catch Error(string memory) {
            revert("ping");
        } catch {
            revert();
        }
        unchecked { balances[msg.sender] -= amount; }
        assembly { let x := 1 }
    }

    receive() external payable {}
}
`

func TestParseFile(t *testing.T) {
	t.Parallel()

	fset := gotoken.NewFileSet()

	f, err := ParseFile(fset, "Vault.sol", []byte(vault))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got, want := len(f.Pragmas), 1; got != want {
		t.Fatalf("Got %d pragmas, want %d", got, want)
	}

	if got, want := f.Pragmas[0].Name+" "+f.Pragmas[0].Value, "solidity ^0.8.20"; got != want {
		t.Errorf("Got pragma %q, want %q", got, want)
	}

	paths := make([]string, 0, len(f.Imports))
	for _, imp := range f.Imports {
		paths = append(paths, imp.Path)
	}

	if diff := cmp.Diff([]string{"./Ownable.sol", "@openzeppelin/contracts/token/ERC20/IERC20.sol"}, paths); diff != "" {
		t.Errorf("Imports mismatch (-want +got):\n%s", diff)
	}

	c := f.Contract("Vault")
	if c == nil {
		t.Fatal("Contract Vault not found")
	}

	if got, want := len(c.Bases), 1; got != want {
		t.Fatalf("Got %d bases, want %d", got, want)
	}

	var names []string
	for _, fn := range c.Functions() {
		names = append(names, fn.DisplayName())
	}

	if diff := cmp.Diff([]string{"deposit", "withdraw", "receive"}, names); diff != "" {
		t.Errorf("Functions mismatch (-want +got):\n%s", diff)
	}

	if c.Modifier("onlyPositive") == nil {
		t.Error("Modifier onlyPositive not found")
	}

	deposit := c.Functions()[0]
	if deposit.Visibility != token.EXTERNAL || deposit.Mutability != token.PAYABLE {
		t.Errorf("Got visibility %v, mutability %v", deposit.Visibility, deposit.Mutability)
	}

	if got, want := len(deposit.Modifiers), 1; got != want {
		t.Errorf("Got %d modifiers, want %d", got, want)
	}

	if deposit.Doc == nil || ast.NoLint(deposit.Doc) {
		t.Errorf("Got doc %v, want a non-directive doc comment", deposit.Doc)
	}

	withdraw := c.Functions()[1]
	if !ast.NoLint(withdraw.Doc) {
		t.Error("Expected nolint directive on withdraw")
	}

	if got, want := len(withdraw.Body.List), 6; got != want {
		t.Fatalf("Got %d statements in withdraw, want %d", got, want)
	}

	kinds := make([]string, 0, len(withdraw.Body.List))
	for _, s := range withdraw.Body.List {
		switch s.(type) {
		case *ast.IfStmt:
			kinds = append(kinds, "if")
		case *ast.ForStmt:
			kinds = append(kinds, "for")
		case *ast.VarDeclStmt:
			kinds = append(kinds, "var")
		case *ast.TryStmt:
			kinds = append(kinds, "try")
		case *ast.BlockStmt:
			kinds = append(kinds, "block")
		case *ast.AssemblyStmt:
			kinds = append(kinds, "assembly")
		default:
			kinds = append(kinds, "other")
		}
	}

	if diff := cmp.Diff([]string{"if", "for", "var", "try", "block", "assembly"}, kinds); diff != "" {
		t.Errorf("Statement mismatch (-want +got):\n%s", diff)
	}

	try := withdraw.Body.List[3].(*ast.TryStmt)
	if got, want := len(try.Catches), 2; got != want {
		t.Errorf("Got %d catch clauses, want %d", got, want)
	}

	if got, want := withdraw.Signature(), "uint256"; got != want {
		t.Errorf("Got signature %q, want %q", got, want)
	}
}

func TestParseExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"precedence", "a+b*c", "a + b * c"},
		{"exponent", "a ** b ** c", "a ** b ** c"},
		{"logical", "a>0&&b!=address(0)||c", "a > 0 && b != address(0) || c"},
		{"member index", "balances[ msg.sender ]", "balances[msg.sender]"},
		{"type max", "type(uint256).max", "type(uint256).max"},
		{"unit", "1 ether", "1 ether"},
		{"ternary", "a ? b : c", "a ? b : c"},
		{"call options", `to.call{value: v}("")`, `to.call{value: v}("")`},
		{"named args", "f({a: 1, b: 2})", "f({a: 1, b: 2})"},
		{"tuple", "(a, , b)", "(a, , b)"},
		{"paren", "!(a == b)", "!(a == b)"},
		{"postfix", "i++", "i++"},
		{"new array", "new uint256[](n)", "new uint256[](n)"},
		{"assign", "x += y", "x += y"},
		{"payable", "payable(msg.sender)", "payable(msg.sender)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			x, err := ParseExpr(tt.src)
			if err != nil {
				t.Fatalf("ParseExpr(%q) failed: %v", tt.src, err)
			}

			if got := ast.Format(x); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrecedenceShape(t *testing.T) {
	t.Parallel()

	x, err := ParseExpr("a || b && c")
	if err != nil {
		t.Fatal(err)
	}

	or, ok := x.(*ast.BinaryExpr)
	if !ok || or.Op != token.LOR {
		t.Fatalf("Got %T, want || at the root", x)
	}

	if and, ok := or.Y.(*ast.BinaryExpr); !ok || and.Op != token.LAND {
		t.Errorf("Got %T on the right, want &&", or.Y)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	const src = `contract Broken {
    function a() public { uint x = ; }
    function b() public { x = 1; }
}
`

	fset := gotoken.NewFileSet()

	f, err := ParseFile(fset, "Broken.sol", []byte(src))
	if err == nil {
		t.Fatal("Expected syntax error")
	}

	var list scanner.ErrorList
	if !errors.As(err, &list) || list.Len() == 0 {
		t.Fatalf("Got %T, want scanner.ErrorList", err)
	}

	if got, want := list[0].Pos.Line, 2; got != want {
		t.Errorf("Got error on line %d, want %d", got, want)
	}

	c := f.Contract("Broken")
	if c == nil {
		t.Fatal("Expected partial AST with contract Broken")
	}

	if got, want := len(c.Functions()), 2; got != want {
		t.Errorf("Got %d functions after recovery, want %d", got, want)
	}
}
