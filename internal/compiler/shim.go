package compiler

// consoleShim is injected into every compiled document ahead of any project
// code. It rewires console.log/warn/error, window.onerror and unhandled
// promise rejections into {type:"console",level,args} records posted over the
// /__console websocket, and reloads the page when the server pushes a
// {type:"reload"} after a republish. Records emitted before the socket opens
// are queued and flushed on connect so early logs are not lost.
const consoleShim = `
(function() {
    var queue = [];
    var sock = null;
    try {
        var proto = location.protocol === 'https:' ? 'wss' : 'ws';
        sock = new WebSocket(proto + '://' + location.host + '/__console');
        sock.onopen = function() {
            for (var i = 0; i < queue.length; i++) sock.send(queue[i]);
            queue = [];
        };
        sock.onmessage = function(ev) {
            try {
                var msg = JSON.parse(ev.data);
                if (msg && msg.type === 'reload') location.reload();
            } catch (e) {}
        };
    } catch (e) {}

    var post = function(level, args) {
        var payload = JSON.stringify({
            type: 'console',
            level: level,
            args: args.map(function(arg) {
                try {
                    return typeof arg === 'object' ? JSON.stringify(arg) : String(arg);
                } catch (e) { return String(arg); }
            })
        });
        if (sock && sock.readyState === 1) {
            sock.send(payload);
        } else {
            queue.push(payload);
        }
    };

    console.log = function() { post('log', Array.prototype.slice.call(arguments)); };
    console.warn = function() { post('warn', Array.prototype.slice.call(arguments)); };
    console.error = function() { post('error', Array.prototype.slice.call(arguments)); };
    window.onerror = function(m, s, l, c, e) { post('error', [m + ' (line ' + l + ')']); };
    window.onunhandledrejection = function(e) { post('error', ['Unhandled Promise Rejection: ' + e.reason]); };
})();
`
