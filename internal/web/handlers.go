package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	corecube "github.com/LarryWang2718/AI-Cube-Solver/internal/cube"
	"github.com/LarryWang2718/AI-Cube-Solver/internal/facelet"
)

type SolveRequest struct {
	Scramble  string `json:"scramble"`
	Algorithm string `json:"algorithm"`
}

type SolveResponse struct {
	Solution      string `json:"solution"`
	Moves         int    `json:"moves"`
	ExpandedNodes int    `json:"expanded_nodes"`
	Iterations    int    `json:"iterations"`
	Time          string `json:"time"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, select, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; }
    </style>
</head>
<body>
    <h1>🧩 Cube Solver</h1>
    <div class="container">
        <h2>Solve Your Cube</h2>
        <form id="solveForm">
            <div>
                <label>Scramble:</label><br>
                <input type="text" id="scramble" placeholder="R U R' U' F R F'" style="width: 300px;">
            </div>
            <div>
                <label>Algorithm:</label>
                <select id="algorithm">
                    <option value="idastar">IDA*</option>
                    <option value="iddfs">IDDFS</option>
                </select>
            </div>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;
            const algorithm = document.getElementById('algorithm').value;

            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ scramble, algorithm })
                });

                const result = await response.json();
                document.getElementById('result').innerHTML =
                    '<h3>Solution:</h3><p>' + result.solution + '</p>' +
                    '<p><strong>Moves:</strong> ' + result.moves + '</p>' +
                    '<p><strong>Time:</strong> ' + result.time + '</p>';
                document.getElementById('result').style.display = 'block';
            } catch (error) {
                document.getElementById('result').innerHTML = '<p style="color: red;">Error: ' + error.message + '</p>';
                document.getElementById('result').style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

// handleSolve calls the same core Engine.Solve entry point the solve
// CLI command does. The engine and its pattern databases are built once
// in NewServer, not per-request.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	c := facelet.NewCube(3)
	moves, err := facelet.ParseScramble(req.Scramble)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error parsing scramble: %v", err), http.StatusBadRequest)
		return
	}
	c.ApplyMoves(moves)

	state, err := facelet.FaceletToState(c)
	if err != nil {
		http.Error(w, fmt.Sprintf("Cube state is not solvable: %v", err), http.StatusBadRequest)
		return
	}

	algo := corecube.IDAStar
	if req.Algorithm == "iddfs" {
		algo = corecube.IDDFS
	}

	result, err := s.engine.Solve(state, algo, corecube.Options{
		MaxIterations: 200,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Error solving cube: %v", err), http.StatusInternalServerError)
		return
	}

	if result.Status != corecube.Found {
		http.Error(w, fmt.Sprintf("Search %s without finding a solution", result.Status), http.StatusUnprocessableEntity)
		return
	}

	response := SolveResponse{
		Solution:      corecube.Sprint(result.Moves),
		Moves:         len(result.Moves),
		ExpandedNodes: result.ExpandedNodes,
		Iterations:    result.Iterations,
		Time:          fmt.Sprintf("%dms", result.ElapsedMs),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
