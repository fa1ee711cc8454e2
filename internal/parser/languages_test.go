package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRustRecognizer(t *testing.T) {
	rec := newRustRecognizer()

	src := strings.Join([]string{
		"pub struct Point {",
		"    x: f64,",
		"}",
		"impl Point {",
		"    pub async fn load(path: &str) -> Self {",
		"        todo!()",
		"    }",
		"}",
	}, "\n")

	els := scan(t, rec, src)

	require.Len(t, els, 3)
	assert.Equal(t, "struct Point", els[0].Label)
	assert.Equal(t, KindImpl, els[1].Kind)
	assert.Equal(t, "impl Point", els[1].Label)
	assert.Equal(t, 8, els[1].EndLine)
	assert.Equal(t, KindAsync, els[2].Kind)
	assert.Equal(t, "async load(path: &str)", els[2].Label)
}

func TestJavaRecognizer(t *testing.T) {
	rec := newJavaRecognizer()

	t.Run("constructor has no return type", func(t *testing.T) {
		src := strings.Join([]string{
			"public class Account {",
			"    public Account(String id) {",
			"        this.id = id;",
			"    }",
			"    private String id() {",
			"        return id;",
			"    }",
			"}",
		}, "\n")

		els := scan(t, rec, src)

		require.Len(t, els, 3)
		assert.Equal(t, "class Account", els[0].Label)
		assert.Equal(t, KindCtor, els[1].Kind)
		assert.Equal(t, "ctor Account(String id)", els[1].Label)
		assert.Equal(t, KindFunction, els[2].Kind)
	})

	t.Run("control keywords are not methods", func(t *testing.T) {
		src := "if (ready) {\n    run();\n}"
		assert.Empty(t, scan(t, rec, src))
	})
}

func TestCFamilyRecognizer(t *testing.T) {
	rec := newCFamilyRecognizer()

	src := strings.Join([]string{
		"typedef struct Node {",
		"    int value;",
		"} Node;",
		"static int find(Node *head, int value) {",
		"    return 0;",
		"}",
	}, "\n")

	els := scan(t, rec, src)

	require.Len(t, els, 2)
	assert.Equal(t, "struct Node", els[0].Label)
	assert.Equal(t, "fn find(Node *head, int value)", els[1].Label)
}

func TestCSharpRecognizer(t *testing.T) {
	rec := newCSharpRecognizer()

	src := strings.Join([]string{
		"public sealed record User(string Name);",
		"internal class Repo {",
		"    public async Task<User> Load(int id) {",
		"        return null;",
		"    }",
		"}",
	}, "\n")

	els := scan(t, rec, src)

	require.Len(t, els, 3)
	assert.Equal(t, "record User", els[0].Label)
	assert.Equal(t, "class Repo", els[1].Label)
	assert.Equal(t, KindAsync, els[2].Kind)
	assert.Equal(t, "async Load(int id)", els[2].Label)
}

func TestPHPRecognizer(t *testing.T) {
	rec := newPHPRecognizer()

	src := strings.Join([]string{
		"final class Cart {",
		"    public function __construct(array $items) {",
		"        $this->items = $items;",
		"    }",
		"    public static function empty() {",
		"        return new self([]);",
		"    }",
		"}",
	}, "\n")

	els := scan(t, rec, src)

	require.Len(t, els, 3)
	assert.Equal(t, "class Cart", els[0].Label)
	assert.Equal(t, KindCtor, els[1].Kind)
	assert.Equal(t, "ctor __construct(array $items)", els[1].Label)
	assert.Equal(t, "fn empty()", els[2].Label)
}

func TestRubyRecognizer(t *testing.T) {
	rec := newRubyRecognizer()

	src := strings.Join([]string{
		"module Billing",
		"  class Invoice",
		"    def initialize(total)",
		"      @total = total",
		"    end",
		"    def self.build(args)",
		"      new(args)",
		"    end",
		"  end",
		"end",
	}, "\n")

	els := scan(t, rec, src)

	require.Len(t, els, 4)
	assert.Equal(t, "module Billing", els[0].Label)
	assert.Equal(t, 10, els[0].EndLine)
	assert.Equal(t, "class Invoice", els[1].Label)
	assert.Equal(t, KindCtor, els[2].Kind)
	assert.Equal(t, "ctor initialize(total)", els[2].Label)
	assert.Equal(t, "fn self.build(args)", els[3].Label)
}

func TestSwiftRecognizer(t *testing.T) {
	rec := newSwiftRecognizer()

	src := strings.Join([]string{
		"public final class Session {",
		"    func send(token: String) {",
		"        self.token = token",
		"    }",
		"    func testRefresh() {",
		"    }",
		"}",
	}, "\n")

	els := scan(t, rec, src)

	require.Len(t, els, 3)
	assert.Equal(t, "class Session", els[0].Label)
	assert.Equal(t, "fn send(token: String)", els[1].Label)
	assert.Equal(t, KindTest, els[2].Kind)
	assert.Equal(t, "test testRefresh()", els[2].Label)
}

func TestKotlinRecognizer(t *testing.T) {
	rec := newKotlinRecognizer()

	src := strings.Join([]string{
		"data class Event(val id: Int)",
		"object Bus {",
		"    suspend fun publish(event: Event) {",
		"    }",
		"}",
	}, "\n")

	els := scan(t, rec, src)

	require.Len(t, els, 3)
	assert.Equal(t, "class Event", els[0].Label)
	assert.Equal(t, "object Bus", els[1].Label)
	assert.Equal(t, KindAsync, els[2].Kind)
	assert.Equal(t, "async publish(event: Event)", els[2].Label)
}

func TestScalaRecognizer(t *testing.T) {
	rec := newScalaRecognizer()

	src := strings.Join([]string{
		"case class Order(id: Long)",
		"object OrderService {",
		"  def place(order: Order): Unit = {",
		"  }",
		"}",
	}, "\n")

	els := scan(t, rec, src)

	require.Len(t, els, 3)
	assert.Equal(t, "case class Order", els[0].Label)
	assert.Equal(t, "object OrderService", els[1].Label)
	assert.Equal(t, "fn place(order: Order)", els[2].Label)
}

func TestLuaRecognizer(t *testing.T) {
	rec := newLuaRecognizer()

	src := strings.Join([]string{
		"local function greet(name)",
		"  print(name)",
		"end",
	}, "\n")

	els := scan(t, rec, src)

	require.Len(t, els, 1)
	assert.Equal(t, "fn greet(name)", els[0].Label)
	assert.Equal(t, 3, els[0].EndLine)
}

func TestPerlRecognizer(t *testing.T) {
	rec := newPerlRecognizer()

	src := strings.Join([]string{
		"package My::Module;",
		"sub new {",
		"    my $class = shift;",
		"}",
	}, "\n")

	els := scan(t, rec, src)

	require.Len(t, els, 2)
	assert.Equal(t, "package My::Module", els[0].Label)
	assert.Equal(t, 1, els[0].EndLine)
	assert.Equal(t, "fn new", els[1].Label)
}

func TestBashRecognizer(t *testing.T) {
	rec := newBashRecognizer()

	t.Run("functions", func(t *testing.T) {
		src := strings.Join([]string{
			"function setup {",
			"  mkdir -p build",
			"}",
			"teardown() {",
			"  rm -rf build",
			"}",
		}, "\n")

		els := scan(t, rec, src)

		require.Len(t, els, 2)
		assert.Equal(t, "fn setup", els[0].Label)
		assert.Equal(t, "fn teardown", els[1].Label)
	})

	t.Run("long loop ends at done", func(t *testing.T) {
		src := strings.Join([]string{
			"for f in *.log; do",
			"  head $f",
			"  tail $f",
			"  wc -l $f",
			"  stat $f",
			"done",
		}, "\n")

		els := scan(t, rec, src)

		require.Len(t, els, 1)
		assert.Equal(t, KindLoop, els[0].Kind)
		assert.Equal(t, "loop for f in *.log", els[0].Label)
		assert.Equal(t, 6, els[0].EndLine)
	})
}
